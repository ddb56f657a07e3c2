package logger

import (
	"fabshop-api/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(appConfig *config.AppConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch appConfig.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	default:
		level = zapcore.WarnLevel
	}

	// production mode
	if level == zapcore.WarnLevel {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		return cfg.Build()
	}

	// development mode, more detailed logging
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return cfg.Build()
}
