package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logDirectory = "logs"

// setupLogging builds the program logger. Debug runs log everything to
// stderr in color; normal runs log info and above to a timestamped file in
// logs/ as well as stderr. The returned path is empty when no file is
// written.
func setupLogging(debug bool) (*zap.SugaredLogger, string, error) {
	var loggerConfig zap.Config
	var logPath string

	if debug {
		loggerConfig = zap.NewDevelopmentConfig()
		loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		if err := os.MkdirAll(logDirectory, 0o755); err != nil {
			return nil, "", fmt.Errorf("create log directory: %w", err)
		}
		logPath = filepath.Join(logDirectory, fmt.Sprintf("rangeseek-%s.log", time.Now().Format("20060102-150405")))

		loggerConfig = zap.NewProductionConfig()
		loggerConfig.Encoding = "console"
		loggerConfig.OutputPaths = []string{"stderr", logPath}
		loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	loggerConfig.EncoderConfig.EncodeCaller = nil
	loggerConfig.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	loggerConfig.EncoderConfig.EncodeName = func(s string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(fmt.Sprintf("%-16s", s))
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, "", fmt.Errorf("create zap logger: %w", err)
	}
	return logger.Sugar(), logPath, nil
}

// logPanic records a recovered panic with its stack before the process exits.
func logPanic(logger *zap.SugaredLogger, r any) {
	logger.Desugar().Error("Panic", zap.Any("value", r), zap.Stack("stack"))
	_ = logger.Sync()
}
