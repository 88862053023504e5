package config

import (
	"github.com/GameItem-Admin/GameItem-Admin/internal/logger"
)

// Upload conflict policies.
const (
	OnConflictIgnore    = "ignore"
	OnConflictOverwrite = "overwrite"
)

// Upload staging backends.
const (
	StagingDisk     = "disk"
	StagingMySQL    = "mysql"
	StagingPostgres = "postgres"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Upload    Upload
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	BodyLimit      int    // max request body size in bytes
	CheckAliveURI  string // path answered by the load balancer health check
}

// Upload implements the item upload settings.
type Upload struct {
	OnConflict   string // ignore keeps existing rows, overwrite replaces them
	Staging      string // disk, mysql or postgres
	TempDir      string // staging directory, disk only
	StagingTable string // staging table, mysql and postgres only
}
