package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger = zap.NewNop()

func Get() *zap.Logger {
	return defaultLogger
}

// Set replaces the process logger with a console logger writing to stderr.
// Verbose enables debug output, which includes the anomalies recovered
// during conversions.
func Set(verbose bool) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	var err error
	defaultLogger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}

// Or returns logger when it is set and the process logger otherwise.
func Or(logger *zap.Logger) *zap.Logger {
	if logger != nil {
		return logger
	}
	return defaultLogger
}

func Flush() {
	_ = defaultLogger.Sync()
}
