package main

import (
	"io"
	"log"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName  = "particlefield.log"
	maxLogSizeMB = 10
	maxLogSize   = maxLogSizeMB << 20
	maxBackups   = 3
)

// logDir is relative to the working directory
var logDir = "logs"

// setupLogging routes slog and the standard logger to a rotating file when debug is set
// tcell owns stdout, so without debug every record is discarded
func setupLogging(debug bool) (*slog.Logger, io.Closer) {
	if !debug {
		log.SetOutput(io.Discard)
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, nil
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxBackups,
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	log.SetOutput(w)
	return logger, w
}
