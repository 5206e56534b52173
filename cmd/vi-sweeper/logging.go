package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "vi-sweeper.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the debug log when enabled, rotating it past maxLogSize
// The terminal belongs to tcell, so nothing is ever written to stdout or stderr.
// The returned file is nil when logging is disabled.
func setupLogging(debug bool, level string) (zerolog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-sweeper-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	log.SetOutput(f)
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f
}
