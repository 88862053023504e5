package config

// Supported gorm engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	GormEngine string // sqlite, mysql or postgres
	Path       string // database file, sqlite only
	Extras     string // extra DSN parameters, appended as-is
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	Debug      bool // log every SQL statement at debug level
	SlowQuery  int  // milliseconds, 0 disables slow query warnings
}
