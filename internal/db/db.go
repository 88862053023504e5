// Package db opens the gorm connection for the configured engine.
package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GameItem-Admin/GameItem-Admin/internal/config"
	"github.com/GameItem-Admin/GameItem-Admin/internal/db/dsn"
	"github.com/GameItem-Admin/GameItem-Admin/internal/db/models"
	"github.com/GameItem-Admin/GameItem-Admin/internal/logger/adapter/gormlogger"
)

var (
	// ErrConfigNil is returned when Open gets no configuration.
	ErrConfigNil = errors.New("db config is nil")
	// ErrUnknownEngine is returned for an unsupported gorm engine.
	ErrUnknownEngine = errors.New("unknown gorm engine")
)

// Dialector returns the gorm dialector for cfg.
func Dialector(cfg *config.DB) (gorm.Dialector, error) {
	switch cfg.GormEngine {
	case config.EngineSQLite, "":
		return sqlite.Open(dsn.SQLite(cfg)), nil
	case config.EngineMySQL:
		return gormmysql.Open(dsn.MySQL(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Postgres(cfg)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.GormEngine)
	}
}

// Open connects to the database and migrates the item table.
func Open(cfg *config.DB) (*gorm.DB, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := gormlogger.New(time.Duration(cfg.SlowQuery)*time.Millisecond, cfg.Debug)

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = Migrate(conn); err != nil {
		_ = Close(conn)
		return nil, err
	}

	log.Info().Str("engine", conn.Dialector.Name()).Msg("database ready")

	return conn, nil
}

// Migrate creates or updates the tables of the service.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&models.Item{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool.
func Close(conn *gorm.DB) error {
	if conn == nil {
		return nil
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
