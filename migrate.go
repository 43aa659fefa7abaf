package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/ledger-server/internal/storage/migrations"
)

func newMigrateCommand(logger *logrus.Logger, load configLoader) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded schema migrations",
	}

	run := func(step func(*migrations.Migrator) error) func(*cobra.Command, []string) error {
		return func(*cobra.Command, []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			m, err := migrations.New(cfg.Postgres.DSN(), logger)
			if err != nil {
				return err
			}
			defer m.Close()

			return step(m)
		}
	}

	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE:  run((*migrations.Migrator).Up),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE:  run((*migrations.Migrator).Down),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: run(func(m *migrations.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				logger.WithFields(logrus.Fields{
					"version": version,
					"dirty":   dirty,
				}).Info("Migrations.Version")
				return nil
			}),
		},
	)

	return migrate
}
