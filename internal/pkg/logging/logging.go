// Package logging builds the process-wide zap logger: console output
// plus a daily log file under the configured log directory.
package logging

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogDir      = "DXN_LOG_DIR"
	defaultDirPerm = 0o755
	filePerm       = 0o644
)

// ResolveDir resolves the log directory path.
func ResolveDir() string {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		return dir
	}
	return filepath.Join(".", "logs")
}

// NewZapLogger builds a logger writing to stdout and today's log file.
func NewZapLogger() (*zap.Logger, error) {
	dir := ResolveDir()
	if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
		return nil, err
	}

	name := filepath.Join(dir, "server_"+time.Now().Format("2006-01-02")+".log")
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return nil, err
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")

	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
		zapcore.NewCore(encoder, zapcore.AddSync(file), level),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	_ = zap.RedirectStdLog(logger)
	return logger, nil
}
