// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// EnvConfigJSON holds a JSON document merged over the TOML configuration.
	EnvConfigJSON = "GAMEITEM_ADMIN_CONFIG_JSON"

	// DefaultPath is the directory searched for main.toml.
	DefaultPath = "./etc/"

	mainFile = "main.toml"

	defaultShutDownTime = 5
	defaultBodyLimit    = 16 << 20 // 16 MiB
	defaultStagingTable = "upload_staging"

	defaultCheckAliveURI = "/checkalive"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	if path == "" {
		path = DefaultPath
	}

	if _, err = toml.DecodeFile(filepath.Join(path, mainFile), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	if override := os.Getenv(EnvConfigJSON); override != "" {
		c, err = decodeAndMergeConfig(c, override)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the service can not start without
// and fills in defaults for the optional ones.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.BodyLimit == 0 {
		c.Webserver.BodyLimit = defaultBodyLimit
	}

	if c.Webserver.CheckAliveURI == "" {
		c.Webserver.CheckAliveURI = defaultCheckAliveURI
	}

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EngineSQLite
	}

	switch c.DB.GormEngine {
	case EngineSQLite:
		if c.DB.Path == "" {
			return errors.Wrap(ErrEmptySQLitePath, invalidErrMessage)
		}
	case EngineMySQL, EnginePostgres:
		if c.DB.Host == "" {
			return errors.Wrap(ErrEmptyDBHost, invalidErrMessage)
		}
	default:
		return errors.Wrapf(ErrUnknownDBEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	return validateUpload(&c.Upload)
}

func validateUpload(u *Upload) error {
	invalidErrMessage := "invalid upload config"

	if u.OnConflict == "" {
		u.OnConflict = OnConflictIgnore
	}

	if u.OnConflict != OnConflictIgnore && u.OnConflict != OnConflictOverwrite {
		return errors.Wrapf(ErrUnknownConflictPolicy, "%s: %q", invalidErrMessage, u.OnConflict)
	}

	if u.Staging == "" {
		u.Staging = StagingDisk
	}

	switch u.Staging {
	case StagingDisk:
		if u.TempDir == "" {
			u.TempDir = filepath.Join(os.TempDir(), "gameitem-admin")
		}
	case StagingMySQL, StagingPostgres:
		if u.StagingTable == "" {
			u.StagingTable = defaultStagingTable
		}
	default:
		return errors.Wrapf(ErrUnknownStaging, "%s: %q", invalidErrMessage, u.Staging)
	}

	return nil
}
