package logger

import (
	"context"
	"log"

	"github.com/CE-Thesis-2023/ptzctl/internal/configs"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger = zap.NewNop()

type Options struct {
	globalConfigs *configs.LoggerConfigs
}

type Optioner func(o *Options)

func WithGlobalConfigs(c *configs.LoggerConfigs) Optioner {
	return func(o *Options) {
		o.globalConfigs = c
	}
}

func Init(ctx context.Context, options ...Optioner) {
	opts := &Options{}
	for _, o := range options {
		o(opts)
	}

	l, err := New(opts.globalConfigs)
	if err != nil {
		log.Fatalf("logger.Init: err = %s", err)
		return
	}

	globalLogger = l
	zap.ReplaceGlobals(l)
}

// New builds a zap logger from the logger section of the configs. A nil
// configs yields an info level JSON logger.
func New(c *configs.LoggerConfigs) (*zap.Logger, error) {
	zapConfigs := zap.NewProductionConfig()
	zapConfigs.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfigs.DisableStacktrace = true

	if c == nil {
		return zapConfigs.Build()
	}

	if c.Level != "" {
		level, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return nil, err
		}
		zapConfigs.Level = level
	}

	switch c.Encoding {
	case "console":
		zapConfigs.Encoding = "console"
		zapConfigs.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "", "json":
		zapConfigs.Encoding = "json"
	default:
		zapConfigs.Encoding = c.Encoding
	}

	return zapConfigs.Build()
}

func Logger() *zap.Logger {
	return globalLogger
}

func Close() {
	_ = globalLogger.Sync()
}

func SDebug(msg string, fields ...zap.Field) {
	globalLogger.Debug(msg, fields...)
}

func SInfo(msg string, fields ...zap.Field) {
	globalLogger.Info(msg, fields...)
}

func SWarn(msg string, fields ...zap.Field) {
	globalLogger.Warn(msg, fields...)
}

func SError(msg string, fields ...zap.Field) {
	globalLogger.Error(msg, fields...)
}

func SFatal(msg string, fields ...zap.Field) {
	globalLogger.Fatal(msg, fields...)
}
