package postgres

import (
	"context"
	"embed"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type DB struct {
	Host           string        `yaml:"host" envconfig:"DB_HOST" default:"localhost"`
	Port           int           `yaml:"port" envconfig:"DB_PORT" default:"5432"`
	User           string        `yaml:"user" envconfig:"DB_USER" default:"postgres"`
	Password       string        `yaml:"password" envconfig:"DB_PASSWORD" json:"-"`
	NameDB         string        `yaml:"dbname" envconfig:"DB_NAME" default:"circulation"`
	SSLMode        string        `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns       int32         `yaml:"maxConns" envconfig:"DB_MAX_CONNS" default:"8"`
	ConnectTimeout time.Duration `yaml:"connectTimeout" envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
}

func (db *DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		db.User, db.Password, net.JoinHostPort(db.Host, strconv.Itoa(db.Port)), db.NameDB, db.SSLMode)
}

// NewPostgresDB opens a pool and applies the embedded goose migrations.
func NewPostgresDB(ctx context.Context, cfg *DB, migrations embed.FS) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.ParseConfig")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.NewWithConfig")
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping")
	}
	if err = Migrate(pool, migrations); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Migrate runs every pending migration found at the root of fsys.
func Migrate(pool *pgxpool.Pool, fsys embed.FS) error {
	db := stdlib.OpenDB(*pool.Config().ConnConfig)
	defer db.Close()

	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose.SetDialect")
	}
	if err := goose.Up(db, "."); err != nil {
		return errors.Wrap(err, "goose.Up")
	}
	return nil
}
