// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/GameItem-Admin/GameItem-Admin/internal/config"
)

const (
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
)

// Create builds the Data Source Name for the configured engine.
// SQLite gets its file path, mysql a go-sql-driver DSN and postgres a URL.
func Create(cfg *config.DB) string {
	switch cfg.GormEngine {
	case config.EngineMySQL:
		return MySQL(cfg)
	case config.EnginePostgres:
		return Postgres(cfg)
	default:
		return SQLite(cfg)
	}
}

// SQLite returns the database file path with the extras as query string.
func SQLite(cfg *config.DB) string {
	if cfg.Extras == "" {
		return cfg.Path
	}

	return cfg.Path + "?" + cfg.Extras
}

// MySQL builds a go-sql-driver/mysql DSN.
func MySQL(cfg *config.DB) string {
	port := cfg.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	out := fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
		cfg.User,
		cfg.Password,
		net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		cfg.Name,
		cfg.Extras,
	)

	return out
}

// Postgres builds a postgres:// connection URL accepted by pgx.
func Postgres(cfg *config.DB) string {
	port := cfg.Port
	if port == 0 {
		port = defaultPostgresPort
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		Path:     "/" + cfg.Name,
		RawQuery: cfg.Extras,
	}

	return u.String()
}
