package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/erictt/bq-metadata-search/config"
	"github.com/erictt/bq-metadata-search/logger"
)

const (
	pingTimeout = 5 * time.Second

	sqliteBusyTimeoutMs = 5000
)

// Store persists catalog metadata. It is opened once and shared; writes are
// expected from a single goroutine.
type Store struct {
	db             *sql.DB
	dialect        dialect
	loggerProvider logger.Provider
	now            func() time.Time
}

// Open connects to the database named by cfg.URL and applies the migrations.
// Connection and migration failures are retried with exponential backoff,
// after which ErrStoreUnavailable is returned.
func Open(ctx context.Context, cfg config.DatabaseConfig, loggerProvider logger.Provider) (*Store, error) {
	driverName, dsn, d := driverFor(cfg.URL)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStoreUnavailable, d, err)
	}

	switch {
	case d == dialectSQLite:
		// a single connection keeps in-memory databases shared and serializes writers
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.DisablePool {
		db.SetMaxIdleConns(0)
	}

	s := newStore(db, d, loggerProvider)

	l := loggerProvider(ctx)
	attempts := cfg.ConnectAttempts

	if attempts < 1 {
		attempts = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.ConnectBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = cfg.ConnectBackoff << attempts
	b.MaxElapsedTime = 0

	attempt := 0
	op := func() error {
		attempt++
		return s.bootstrap(ctx)
	}

	notify := func(err error, next time.Duration) {
		l.Warningf("database connection attempt %d failed: %v. retrying in %s", attempt, err, next)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		_ = db.Close()

		l.Errorf("failed to connect to database after %d attempts: %v", attempt, err)

		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	l.Infof("connected to %s metadata store", d)

	return s, nil
}

// newStore wraps an open database handle. Migrations are not applied, see Migrate.
func newStore(db *sql.DB, d dialect, loggerProvider logger.Provider) *Store {
	return &Store{
		db:             db,
		dialect:        d,
		loggerProvider: loggerProvider,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// NewSQLite wraps an open SQLite handle.
func NewSQLite(db *sql.DB, loggerProvider logger.Provider) *Store {
	return newStore(db, dialectSQLite, loggerProvider)
}

// NewPostgres wraps an open Postgres handle.
func NewPostgres(db *sql.DB, loggerProvider logger.Provider) *Store {
	return newStore(db, dialectPostgres, loggerProvider)
}

func (s *Store) bootstrap(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	return s.Migrate(ctx)
}

// Migrate creates the tables and indexes when missing.
func (s *Store) Migrate(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range s.dialect.migrations() {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		return nil
	})
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return s.db.PingContext(pingCtx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction, committing on success and rolling back otherwise.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// rebind rewrites "?" placeholders to the "$n" form expected by Postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}

	var (
		b strings.Builder
		n int
	)

	b.Grow(len(query) + 8)

	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}

		n++

		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}

// driverFor picks the database/sql driver from the URL scheme. Postgres URLs use
// the pgx stdlib driver; everything else is treated as a SQLite location.
func driverFor(url string) (string, string, dialect) {
	scheme, rest, ok := strings.Cut(url, "://")
	if ok {
		// SQLAlchemy style "postgresql+psycopg2://"
		scheme, _, _ = strings.Cut(scheme, "+")

		switch scheme {
		case "postgres", "postgresql":
			return "pgx", "postgres://" + rest, dialectPostgres
		case "sqlite":
			// "sqlite:///relative.db" and "sqlite:////abs/path.db" as in SQLAlchemy
			rest = strings.TrimPrefix(rest, "/")

			return "sqlite", sqliteDSN(rest), dialectSQLite
		}
	}

	return "sqlite", sqliteDSN(url), dialectSQLite
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)", path, sep, sqliteBusyTimeoutMs)
}
