package dsn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GameItem-Admin/GameItem-Admin/internal/config"
	"github.com/GameItem-Admin/GameItem-Admin/internal/db/dsn"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DB
		want string
	}{
		{
			name: "sqlite path",
			cfg:  config.DB{GormEngine: config.EngineSQLite, Path: "items.db"},
			want: "items.db",
		},
		{
			name: "sqlite with extras",
			cfg:  config.DB{GormEngine: config.EngineSQLite, Path: "items.db", Extras: "_pragma=busy_timeout(5000)"},
			want: "items.db?_pragma=busy_timeout(5000)",
		},
		{
			name: "mysql",
			cfg: config.DB{
				GormEngine: config.EngineMySQL,
				Host:       "db",
				Port:       3307,
				User:       "admin",
				Password:   "secret",
				Name:       "game",
				Extras:     "parseTime=true",
			},
			want: "admin:secret@tcp(db:3307)/game?parseTime=true",
		},
		{
			name: "mysql default port",
			cfg:  config.DB{GormEngine: config.EngineMySQL, Host: "db", User: "u", Password: "p", Name: "game"},
			want: "u:p@tcp(db:3306)/game?",
		},
		{
			name: "postgres",
			cfg: config.DB{
				GormEngine: config.EnginePostgres,
				Host:       "pg",
				User:       "admin",
				Password:   "p@ss",
				Name:       "game",
				Extras:     "sslmode=disable",
			},
			want: "postgres://admin:p%40ss@pg:5432/game?sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dsn.Create(&tt.cfg))
		})
	}
}
