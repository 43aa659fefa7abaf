package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/config"
)

// Tables the projections read. The server refuses to start without them.
var requiredTables = []string{"users", "accounts", "categories", "transactions", "budgets", "notifications"}

type Storage struct {
	DB     *sql.DB
	bobDB  bob.DB
	reader *Reader
}

// NewStorage opens the connection pool and checks that the database answers.
func NewStorage(ctx context.Context, cfg config.PostgresConfig) (*Storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return New(db), nil
}

// New wraps an already opened pool.
func New(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:     db,
		bobDB:  bobDB,
		reader: NewReader(bobDB),
	}
}

// Read returns the tables bound to the pool.
func (s *Storage) Read() *Reader {
	return s.reader
}

// Write starts a transaction. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

// WithTx runs fn in a transaction, committing when it returns nil and rolling
// back on an error or a panic.
func (s *Storage) WithTx(ctx context.Context, fn func(*Writer) error) (err error) {
	writer, err := s.Write(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = writer.Rollback(ctx)
			panic(p)
		}
	}()

	if err = fn(writer); err != nil {
		if rbErr := writer.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err = writer.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// VerifySchema reports a ConfigError naming every required table that is
// missing from the current schema.
func (s *Storage) VerifySchema(ctx context.Context) error {
	q := psql.RawQuery(
		`SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema()`,
	)
	present, err := bob.All(ctx, s.bobDB, q, scan.SingleColumnMapper[string])
	if err != nil {
		return &apperr.ConfigError{Reason: "schema check", Err: err}
	}

	missing := missingTables(present)
	if len(missing) > 0 {
		return &apperr.ConfigError{Reason: fmt.Sprintf("missing tables %v", missing)}
	}
	return nil
}

func missingTables(present []string) []string {
	found := make(map[string]bool, len(present))
	for _, name := range present {
		found[name] = true
	}
	var missing []string
	for _, name := range requiredTables {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
