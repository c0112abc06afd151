package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/orbit/config"
)

const (
	logDir      = "logs"
	logFileName = "orbit.log"
	maxLogSize  = 10 * 1024 * 1024
)

// openLogFile opens path for appending, rotating an oversized file to a timestamped name
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := strings.TrimSuffix(path, ext) + "_" + time.Now().Format("20060102_150405") + ext
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// logPath resolves the log file; empty means no logging
func logPath(cfg config.LoggingConfig, flagPath string, debug bool) string {
	switch {
	case flagPath != "":
		return flagPath
	case cfg.File != "":
		return cfg.File
	case debug:
		return filepath.Join(logDir, logFileName)
	}
	return ""
}

// newLogger builds a file logger tagged with the session id
// The terminal owns stdout and stderr, so without a path the logger is a no-op
func newLogger(cfg config.LoggingConfig, path string, debug bool, session string) (*zap.Logger, func(), error) {
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	if debug {
		level = zapcore.DebugLevel
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encCfg.ConsoleSeparator = "  "
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	f, err := openLogFile(path)
	if err != nil {
		return nil, nil, err
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(f), zap.NewAtomicLevelAt(level))
	log := zap.New(core).With(zap.String("session", session))
	closeFn := func() {
		_ = log.Sync()
		_ = f.Close()
	}
	return log, closeFn, nil
}
