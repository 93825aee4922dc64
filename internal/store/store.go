package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bornholm/timetrack/pkg/log"
	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitemigration"
	"zombiezen.com/go/sqlite/sqlitex"
)

var ErrNotFound = errors.New("not found")

// Store persists the employees known to the application, whether they
// signed in through a provider or hold a local account
type Store struct {
	pool *sqlitemigration.Pool
}

var schema = sqlitemigration.Schema{
	Migrations: userMigrations,
}

// HealthCheck waits for the schema to be migrated
func (s *Store) HealthCheck(ctx context.Context) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	defer s.pool.Put(conn)

	if err := s.pool.CheckHealth(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Store) Do(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	defer s.pool.Put(conn)

	if err := fn(conn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Tx runs fn in a savepoint, rolled back when fn fails
func (s *Store) Tx(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	return errors.WithStack(s.Do(ctx, func(conn *sqlite.Conn) (err error) {
		defer sqlitex.Save(conn)(&err)
		err = fn(conn)
		return errors.WithStack(err)
	}))
}

func (s *Store) Close() error {
	if err := s.pool.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

type Options struct {
	PoolSize    int
	BusyTimeout time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		PoolSize:    0,
		BusyTimeout: 5 * time.Second,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithPoolSize(size int) OptionFunc {
	return func(opts *Options) {
		opts.PoolSize = size
	}
}

// WithBusyTimeout sets how long a connection waits for a lock held by
// another one
func WithBusyTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.BusyTimeout = timeout
	}
}

func NewStore(uri string, funcs ...OptionFunc) *Store {
	opts := NewOptions(funcs...)

	pool := sqlitemigration.NewPool(uri, schema, sqlitemigration.Options{
		Flags:    sqlite.OpenCreate | sqlite.OpenReadWrite | sqlite.OpenWAL,
		PoolSize: opts.PoolSize,
		PrepareConn: func(conn *sqlite.Conn) error {
			pragmas := []string{
				"PRAGMA foreign_keys = on",
				fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds()),
			}

			for _, p := range pragmas {
				if err := sqlitex.ExecuteTransient(conn, p, nil); err != nil {
					return errors.Wrapf(err, "could not execute '%s'", p)
				}
			}

			return nil
		},
		OnStartMigrate: func() {
			slog.Debug("migrating store schema", slog.String("uri", uri))
		},
		OnReady: func() {
			slog.Debug("store ready", slog.String("uri", uri))
		},
		OnError: func(err error) {
			slog.Error("could not migrate store schema", slog.String("uri", uri), log.Error(errors.WithStack(err)))
		},
	})

	return &Store{
		pool: pool,
	}
}
