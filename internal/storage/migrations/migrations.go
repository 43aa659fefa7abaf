// Package migrations embeds the ledger schema and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Migrator owns its own connection. The postgres driver closes the *sql.DB it
// wraps, so it must never share the server pool.
type Migrator struct {
	m      *migrate.Migrate
	logger *logrus.Logger
}

func New(dsn string, logger *logrus.Logger) (*Migrator, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	return &Migrator{m: m, logger: logger}, nil
}

// Version returns the applied schema version, 0 when nothing has run yet.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read schema version: %w", err)
	}
	return version, dirty, nil
}

func (mg *Migrator) Up() error {
	return mg.run("up", mg.m.Up)
}

func (mg *Migrator) Down() error {
	return mg.run("down", mg.m.Down)
}

func (mg *Migrator) run(direction string, step func() error) error {
	preMigrationVersion, _, err := mg.Version()
	if err != nil {
		return err
	}

	if err := step(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	postMigrationVersion, dirty, err := mg.Version()
	if err != nil {
		return err
	}

	mg.logger.WithFields(logrus.Fields{
		"direction":            direction,
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
		"dirty":                dirty,
	}).Info("Migrations.Run.status")
	return nil
}

func (mg *Migrator) Close() error {
	sourceErr, dbErr := mg.m.Close()
	return errors.Join(sourceErr, dbErr)
}
