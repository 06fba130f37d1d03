// Package gormlogger adapts the zerolog main logger to gorm's logger
// interface so database traffic shows up in the panel's log streams.
package gormlogger

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"
)

// Logger implements gorm's logger.Interface on top of zerolog.
type Logger struct {
	// SlowThreshold marks queries slower than this as warnings.
	SlowThreshold time.Duration

	// SkipRecordNotFound suppresses gorm.ErrRecordNotFound, which the
	// option controllers treat as a regular outcome.
	SkipRecordNotFound bool
}

// New creates a gorm logger adapter with sensible defaults.
func New() *Logger {
	return &Logger{
		SlowThreshold:      200 * time.Millisecond, //nolint: mnd
		SkipRecordNotFound: true,
	}
}

// LogMode implements logger.Interface. The zerolog global level rules,
// so the requested mode is ignored.
func (l *Logger) LogMode(gormlog.LogLevel) gormlog.Interface {
	return l
}

// Info implements logger.Interface.
func (l *Logger) Info(_ context.Context, msg string, args ...any) {
	log.Info().Msgf(msg, args...)
}

// Warn implements logger.Interface.
func (l *Logger) Warn(_ context.Context, msg string, args ...any) {
	log.Warn().Msgf(msg, args...)
}

// Error implements logger.Interface.
func (l *Logger) Error(_ context.Context, msg string, args ...any) {
	log.Error().Msgf(msg, args...)
}

// Trace implements logger.Interface and logs one executed statement.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && (!l.SkipRecordNotFound || !errors.Is(err, gorm.ErrRecordNotFound)):
		log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold:
		log.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("slow query")
	default:
		log.Trace().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
