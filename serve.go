package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/migrations"
)

type configLoader func() (*config.Config, error)

func newServeCommand(logger *logrus.Logger, load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, logger, cfg)
		},
	}
}

func serve(ctx context.Context, logger *logrus.Logger, cfg *config.Config) error {
	logger.Info("ledger-server starting")

	if cfg.Database.AutoMigrate {
		if err := migrateUp(logger, cfg); err != nil {
			return err
		}
	}

	dbStorage, err := storage.NewStorage(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	if err := dbStorage.VerifySchema(ctx); err != nil {
		logger.WithError(err).Error("storage.VerifySchema")
		return err
	}

	delegator := operator.NewOperatorDelegator(dbStorage, cfg.Database.WriteWorkers)
	delegator.Start()
	defer delegator.Stop()

	httpRest := api.Rest{
		Logger:   logger,
		Config:   cfg.Server,
		Service:  service.NewService(delegator, cfg.Security.BcryptCost),
		Database: dbStorage,
	}
	if err := httpRest.Serve(ctx); err != nil {
		return fmt.Errorf("serve http: %w", err)
	}

	logger.Info("ledger-server stopped")
	return nil
}

func migrateUp(logger *logrus.Logger, cfg *config.Config) error {
	m, err := migrations.New(cfg.Postgres.DSN(), logger)
	if err != nil {
		return err
	}
	defer m.Close()

	return m.Up()
}
