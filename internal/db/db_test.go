package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GameItem-Admin/GameItem-Admin/internal/config"
	"github.com/GameItem-Admin/GameItem-Admin/internal/db"
	"github.com/GameItem-Admin/GameItem-Admin/internal/db/models"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.DB{
		GormEngine: config.EngineSQLite,
		Path:       filepath.Join(t.TempDir(), "items.db"),
	}

	conn, err := db.Open(cfg)
	require.NoError(t, err)

	assert.True(t, conn.Migrator().HasTable(&models.Item{}))
	assert.NoError(t, db.Close(conn))
}

func TestOpenErrors(t *testing.T) {
	_, err := db.Open(nil)
	require.ErrorIs(t, err, db.ErrConfigNil)

	_, err = db.Open(&config.DB{GormEngine: "oracle"})
	require.ErrorIs(t, err, db.ErrUnknownEngine)
}

func TestDialector(t *testing.T) {
	tests := []struct {
		engine string
		want   string
	}{
		{engine: "", want: "sqlite"},
		{engine: config.EngineSQLite, want: "sqlite"},
		{engine: config.EngineMySQL, want: "mysql"},
		{engine: config.EnginePostgres, want: "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.engine, func(t *testing.T) {
			d, err := db.Dialector(&config.DB{GormEngine: tt.engine, Host: "localhost", Path: ":memory:"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, db.Close(nil))
}
