package logger

import (
	"github.com/atlasdoors/backoffice/internal/config"
	"github.com/atlasdoors/backoffice/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide logging functionality
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger creates and returns a new Logger instance configured from
// the application configuration.
func NewLogger(cfg *config.Configuration) (*Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Logging.Level == types.LogLevelDebug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		zapCfg.Development = true
		zapCfg.Encoding = "console"
	}

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}

// GetLogger returns a logger for scripts and tests where dependency
// injection is not available. Errors fall back to a no-op logger.
func GetLogger() *Logger {
	l, err := NewLogger(config.GetDefaultConfig())
	if err != nil {
		return &Logger{SugaredLogger: zap.NewNop().Sugar()}
	}
	return l
}
