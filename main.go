package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
)

func main() {
	logger := logging.SetupLogging()

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.WithError(err).Error("ledger-server exited")
		os.Exit(1)
	}
}

func newRootCommand(logger *logrus.Logger) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "ledger-server",
		Short:         "Personal finance ledger HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML configuration file")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if err := logging.SetLevel(logger, cfg.Log.Level); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	root.AddCommand(newServeCommand(logger, load), newMigrateCommand(logger, load))
	return root
}
