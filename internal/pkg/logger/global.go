package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	globalLogger   *ZapLogger
	fallbackLogger *ZapLogger
	once           sync.Once
	mu             sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger, falling back to a production logger
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	current := globalLogger
	mu.RUnlock()
	if current != nil {
		return current
	}

	once.Do(func() {
		defaultLogger, err := zap.NewProduction()
		if err != nil {
			defaultLogger = zap.NewNop()
		}
		fallbackLogger = &ZapLogger{Logger: defaultLogger, sugar: defaultLogger.Sugar()}
	})
	return fallbackLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// InfoCtx logs an info message with trace fields taken from ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().WithContext(ctx).Info(msg, fields...)
}

// WarnCtx logs a warning with trace fields taken from ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().WithContext(ctx).Warn(msg, fields...)
}

// ErrorCtx logs an error with trace fields taken from ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().WithContext(ctx).Error(msg, fields...)
}
