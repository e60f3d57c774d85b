package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with appropriate configuration.
// Verbose runs get the colored development encoder at debug level.
func NewLogger(verbose bool) (*zap.Logger, error) {
	var config zap.Config

	if verbose {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	return config.Build()
}

// MustNewLogger creates a new logger and panics if it fails
func MustNewLogger(verbose bool) *zap.Logger {
	logger, err := NewLogger(verbose)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}
