package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger пропускает SQL-трейсы GORM через slog.
// Обычные запросы пишутся на debug, медленные на warn, упавшие на error.
type GormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(env string, slowThreshold time.Duration) *GormLogger {
	level := gormlogger.Warn
	if env == "development" {
		level = gormlogger.Info
	}
	return &GormLogger{level: level, slowThreshold: slowThreshold}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		FromContext(ctx).Info(fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		FromContext(ctx).Warn(fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		FromContext(ctx).Error(fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []any{
		"component", "gorm",
		"query", sql,
		"rows", rows,
		"duration_ms", elapsed.Milliseconds(),
	}

	switch {
	// ErrRecordNotFound - штатная ситуация, репозитории превращают ее в 404
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		FromContext(ctx).Error("database query failed", append(fields, "error", err.Error())...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		FromContext(ctx).Warn("slow database query", fields...)
	case l.level >= gormlogger.Info:
		FromContext(ctx).Debug("database query", fields...)
	}
}
