package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.RWMutex
	level    = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	instance = func() *zap.Logger {
		config := zap.NewProductionConfig()
		config.Level = level
		config.EncoderConfig.TimeKey = "ts"
		config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		log, err := config.Build(zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
		return log
	}()
)

// SetLevel changes the minimum level of the shared logger. Accepts zap level names
// ("debug", "info", "warn", "error").
func SetLevel(name string) error {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(lvl)
	return nil
}

// Replace swaps the shared logger, mainly so tests can silence or observe output.
func Replace(log *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	instance = log
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

func Sync() {
	_ = L().Sync()
}

func Fatal(msg string, err error, fields ...zap.Field) {
	L().Fatal(msg, append(fields, zap.Error(err))...)
}

func Error(msg string, err error, fields ...zap.Field) {
	L().Error(msg, append(fields, zap.Error(err))...)
}

func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}
