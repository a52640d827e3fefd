package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" warn ", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	logger, closer, err := New(Options{Path: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden message")
	logger.Warn("visible message", "task_id", 42)

	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)

	if strings.Contains(out, "hidden message") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("expected warn line in log, got %q", out)
	}
	if !strings.Contains(out, "task_id=42") {
		t.Errorf("expected structured field in log, got %q", out)
	}
	if !strings.Contains(out, Prefix) {
		t.Errorf("expected prefix %q in log, got %q", Prefix, out)
	}
}

func TestNewDebugOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, closer, err := New(Options{Path: path, Level: "error", Debug: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()

	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %v", logger.GetLevel())
	}
}

func TestNewEmptyPath(t *testing.T) {
	if _, _, err := New(Options{}); err == nil {
		t.Error("expected error for empty path")
	}
}
