package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDBEngine error if config db.gormEngine is not supported.
	ErrUnknownDBEngine = errors.New("toml config db.gormEngine is not supported")

	// ErrEmptySQLitePath error if the sqlite engine is used without db.path.
	ErrEmptySQLitePath = errors.New("toml config db.path can not be empty for sqlite")

	// ErrEmptyDBHost error if a network database engine is used without db.host.
	ErrEmptyDBHost = errors.New("toml config db.host can not be empty")

	// ErrUnknownConflictPolicy error if config upload.onConflict is not supported.
	ErrUnknownConflictPolicy = errors.New("toml config upload.onConflict must be ignore or overwrite")

	// ErrUnknownStaging error if config upload.staging is not supported.
	ErrUnknownStaging = errors.New("toml config upload.staging must be disk, mysql or postgres")
)
