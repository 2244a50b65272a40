package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu  sync.RWMutex
	log *slog.Logger
)

// Init инициализирует глобальный логгер.
// env: "development" (текст, debug) или любой другой (JSON, info)
func Init(env string) {
	InitWithWriter(env, os.Stdout)
}

// InitWithWriter - то же, что Init, но с произвольным выводом (тесты, файлы)
func InitWithWriter(env string, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: env != "test",
	}

	var handler slog.Handler
	switch env {
	case "development":
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	case "test":
		opts.Level = slog.LevelWarn
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	l := slog.New(handler).With("service", "contest_backend")

	mu.Lock()
	log = l
	mu.Unlock()
	slog.SetDefault(l)
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l == nil {
		Init("development")
		return GetLogger()
	}
	return l
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует ошибку и завершает программу
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With создает новый логгер с дополнительными полями
// Пример: logger.With("contest_id", id).Info("leaderboard built")
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// WithError создает логгер с полем error
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}

// WorkerLog логирует операцию фонового воркера
func WorkerLog(worker, operation string, err error, args ...any) {
	fields := append([]any{
		"worker", worker,
		"operation", operation,
	}, args...)

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("worker operation failed", fields...)
		return
	}
	GetLogger().Debug("worker operation completed", fields...)
}
