package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func withLogDir(t *testing.T) string {
	t.Helper()
	prev := logDir
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() {
		logDir = prev
		log.SetOutput(os.Stderr)
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})
	return logDir
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := withLogDir(t)

	logger, closer := setupLogging(false)
	if closer != nil {
		t.Error("Expected nil closer when debug=false")
		closer.Close()
	}
	logger.Info("dropped")

	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := withLogDir(t)

	logger, closer := setupLogging(true)
	if closer == nil {
		t.Fatal("Expected non-nil closer when debug=true")
	}
	defer closer.Close()

	logger.Info("test log message", "component", "test")
	log.Println("standard logger message")

	logPath := filepath.Join(dir, logFileName)
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Expected log file to be created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := withLogDir(t)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logger, closer := setupLogging(true)
	defer closer.Close()
	logger.Info("after rotation")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	if len(entries) < 2 {
		t.Errorf("Expected rotated backup beside the new log, got %d files", len(entries))
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() >= maxLogSize {
		t.Errorf("Expected fresh log file after rotation, got %d bytes", info.Size())
	}
}
