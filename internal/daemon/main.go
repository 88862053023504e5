// Package daemon assembles the service from its configuration.
package daemon

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GameItem-Admin/GameItem-Admin/internal/config"
	"github.com/GameItem-Admin/GameItem-Admin/internal/db"
	controller "github.com/GameItem-Admin/GameItem-Admin/internal/db/controller/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/upload"
	"github.com/GameItem-Admin/GameItem-Admin/internal/upload/staging"
	"github.com/GameItem-Admin/GameItem-Admin/internal/web"
)

// ErrConfigNil is returned when no configuration is given.
var ErrConfigNil = errors.New("config is nil")

// Components are the long lived handles shared by the web service and the CLI.
type Components struct {
	DB       *gorm.DB
	Store    fiber.Storage
	Pipeline *upload.Pipeline
}

// Open connects the database and the staging store and builds the upload pipeline.
func Open(cfg *config.Config) (*Components, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	conn, err := db.Open(&cfg.DB)
	if err != nil {
		return nil, err
	}

	store, err := staging.New(cfg.Upload, cfg.DB)
	if err != nil {
		_ = db.Close(conn)
		return nil, err
	}

	validator, err := item.NewValidator()
	if err != nil {
		_ = store.Close()
		_ = db.Close(conn)

		return nil, err
	}

	return &Components{
		DB:       conn,
		Store:    store,
		Pipeline: upload.New(conn, store, validator, controller.ConflictPolicy(cfg.Upload.OnConflict)),
	}, nil
}

// Close releases the staging store and the database.
func (c *Components) Close() error {
	return errors.Join(c.Store.Close(), db.Close(c.DB))
}

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	components *Components
	webService *web.Service
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	components, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	webService, err := web.New(cfg, components.DB, components.Pipeline)
	if err != nil {
		_ = components.Close()
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		components: components,
		webService: webService,
	}, nil
}

// Start serves until SIGINT or SIGTERM, then shuts down and closes the stores.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	err := d.webService.Start(addr)

	if closeErr := d.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("failed to close stores")
	}

	return err
}

// Close releases the stores without serving.
func (d *Daemon) Close() error {
	return d.components.Close()
}
