package store

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrijs2005/securelogin/internal/dbx"
	"github.com/dmitrijs2005/securelogin/internal/logging"
	"github.com/dmitrijs2005/securelogin/internal/store/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// PostgresStore keeps one row per user in the credentials table.
type PostgresStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewPostgresStore(db *sql.DB, log logging.Logger) *PostgresStore {
	if log == nil {
		log = logging.Nop()
	}
	return &PostgresStore{db: db, log: log}
}

// OpenPostgresStore connects with the pgx driver and applies migrations.
func OpenPostgresStore(ctx context.Context, dsn string, log logging.Logger) (*PostgresStore, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migrations: %w", err)
	}
	return NewPostgresStore(db, log), nil
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func (s *PostgresStore) Load(ctx context.Context) (Credentials, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, password FROM credentials`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	creds := Credentials{}
	for rows.Next() {
		var username, password string
		if err := rows.Scan(&username, &password); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		creds[username] = password
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return creds, nil
}

// Save replaces every row in a single transaction.
func (s *PostgresStore) Save(ctx context.Context, creds Credentials) error {
	usernames := slices.Sorted(maps.Keys(creds))

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		for _, username := range usernames {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO credentials (username, password) VALUES ($1, $2)`,
				username, creds[username]); err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Debug(ctx, "credentials saved", "users", len(creds))
	return nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }
