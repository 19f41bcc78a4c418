package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mamadbah2/avinventory/internal/config"
)

// New instantiates a zap logger from the log settings. Output defaults to
// stderr so log lines never mix with the menu written to stdout.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	var zcfg zap.Config
	switch cfg.Format {
	case config.LogFormatJSON:
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "timestamp"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		zcfg = zap.NewDevelopmentConfig()
		zcfg.DisableStacktrace = true
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	zcfg.OutputPaths = []string{output}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}

// Must is a helper that panics when the logger cannot be created.
func Must(logger *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return logger
}

// Named returns a child logger with the provided component name.
func Named(base *zap.Logger, component string) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(component)
}
