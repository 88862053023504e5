package gormlogger_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"

	"github.com/GameItem-Admin/GameItem-Admin/internal/logger/adapter/gormlogger"
)

func query() (string, int64) {
	return "SELECT * FROM `items`", 3
}

func TestTrace(t *testing.T) {
	tests := []struct {
		name      string
		level     gormlog.LogLevel
		slow      time.Duration
		traceAll  bool
		elapsed   time.Duration
		err       error
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "failed query logged as error",
			level:     gormlog.Warn,
			err:       errors.New("no such table: items"), //nolint:goerr113
			wantLevel: `"level":"error"`,
			wantMsg:   "query failed",
		},
		{
			name:  "record not found is silent",
			level: gormlog.Warn,
			err:   gorm.ErrRecordNotFound,
		},
		{
			name:      "slow query logged as warning",
			level:     gormlog.Warn,
			slow:      time.Millisecond,
			elapsed:   50 * time.Millisecond,
			wantLevel: `"level":"warn"`,
			wantMsg:   "slow query",
		},
		{
			name:      "trace all logs at debug",
			level:     gormlog.Warn,
			traceAll:  true,
			wantLevel: `"level":"debug"`,
			wantMsg:   "SELECT * FROM `items`",
		},
		{
			name:  "silent drops everything",
			level: gormlog.Silent,
			err:   errors.New("boom"), //nolint:goerr113
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := gormlogger.New(tt.slow, tt.traceAll).
				WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)).
				LogMode(tt.level)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), query, tt.err)

			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())
				return
			}

			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), tt.wantMsg)
		})
	}
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer

	l := gormlogger.New(0, false).WithLogger(zerolog.New(&buf))

	l.Info(context.Background(), "opened %s", "items.db")
	assert.Empty(t, buf.String(), "info is below the default warn level")

	l.Warn(context.Background(), "retrying %d", 2)
	assert.Contains(t, buf.String(), "retrying 2")

	buf.Reset()
	l.LogMode(gormlog.Info).Info(context.Background(), "opened %s", "items.db")
	assert.Contains(t, buf.String(), "opened items.db")
}
