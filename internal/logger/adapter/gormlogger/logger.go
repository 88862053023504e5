// Package gormlogger routes gorm's SQL logging through zerolog.
package gormlogger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"
)

// Logger implements gorm's logger.Interface on top of a zerolog logger.
type Logger struct {
	zl            zerolog.Logger
	level         gormlog.LogLevel
	slowThreshold time.Duration
	traceAll      bool
}

// New returns a gorm logger writing to the global zerolog logger.
// Slow statements above slowThreshold are logged as warnings (0 disables);
// with traceAll every statement is logged at debug level.
func New(slowThreshold time.Duration, traceAll bool) *Logger {
	return &Logger{
		zl:            log.Logger.With().Str("component", "gorm").Logger(),
		level:         gormlog.Warn,
		slowThreshold: slowThreshold,
		traceAll:      traceAll,
	}
}

// WithLogger replaces the underlying zerolog logger.
func (l *Logger) WithLogger(zl zerolog.Logger) *Logger {
	clone := *l
	clone.zl = zl

	return &clone
}

// LogMode implements logger.Interface.
func (l *Logger) LogMode(level gormlog.LogLevel) gormlog.Interface {
	clone := *l
	clone.level = level

	return &clone
}

// Info implements logger.Interface.
func (l *Logger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= gormlog.Info {
		l.zl.Info().Msg(fmt.Sprintf(msg, data...))
	}
}

// Warn implements logger.Interface.
func (l *Logger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= gormlog.Warn {
		l.zl.Warn().Msg(fmt.Sprintf(msg, data...))
	}
}

// Error implements logger.Interface.
func (l *Logger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= gormlog.Error {
		l.zl.Error().Msg(fmt.Sprintf(msg, data...))
	}
}

// Trace implements logger.Interface.
// Record not found errors are expected lookups and are not logged as errors.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlog.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlog.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.zl.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlog.Warn:
		sql, rows := fc()
		l.zl.Warn().Dur("elapsed", elapsed).Dur("threshold", l.slowThreshold).
			Int64("rows", rows).Str("sql", sql).Msg("slow query")
	case l.traceAll:
		sql, rows := fc()
		l.zl.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
