package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewAppLogger builds the process logger and installs it as the zap global,
// which is what domain handlers fall back to when no logger is injected.
func NewAppLogger() (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if env := os.Getenv("APP_ENV"); env == "" || env == "local" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(l)

	return l.Sugar(), nil
}

func Sync(l *zap.SugaredLogger) {
	_ = l.Sync()
}
