// Package staging keeps uploaded files between the multipart read and the
// upload pipeline. Every backend implements fiber.Storage.
package staging

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	mysqlstorage "github.com/gofiber/storage/mysql/v2"
	pgstorage "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/GameItem-Admin/GameItem-Admin/internal/config"
	"github.com/GameItem-Admin/GameItem-Admin/internal/db/dsn"
)

const gcInterval = 10 * time.Minute

var (
	// ErrUnknownBackend is returned for an unsupported staging backend.
	ErrUnknownBackend = errors.New("unknown staging backend")
	// ErrConnect is returned when a database backend can not be reached.
	ErrConnect = errors.New("failed to connect staging backend")
)

// New returns the staging store selected by upload.Staging.
// The database backends share the connection settings of db.
func New(upload config.Upload, db config.DB) (fiber.Storage, error) {
	switch upload.Staging {
	case config.StagingDisk, "":
		return NewDisk(upload.TempDir)
	case config.StagingMySQL:
		return connect(upload.Staging, func() fiber.Storage {
			return mysqlstorage.New(mysqlstorage.Config{
				ConnectionURI: dsn.MySQL(&db),
				Table:         upload.StagingTable,
				GCInterval:    gcInterval,
			})
		})
	case config.StagingPostgres:
		return connect(upload.Staging, func() fiber.Storage {
			return pgstorage.New(pgstorage.Config{
				ConnectionURI: dsn.Postgres(&db),
				Table:         upload.StagingTable,
				GCInterval:    gcInterval,
			})
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, upload.Staging)
	}
}

// connect turns the panic the storage constructors raise on a failed ping into an error.
func connect(backend string, open func() fiber.Storage) (store fiber.Storage, err error) {
	defer func() {
		if r := recover(); r != nil {
			store = nil
			err = fmt.Errorf("%w %s: %v", ErrConnect, backend, r)
		}
	}()

	store = open()
	log.Info().Str("backend", backend).Msg("upload staging ready")

	return store, nil
}
