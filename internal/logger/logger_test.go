package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbsmedya/csvaudit/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{
			name:    "json format info level",
			cfg:     &config.LoggingConfig{Level: "info", Format: "json", Output: "stderr"},
			wantErr: false,
		},
		{
			name:    "text format debug level",
			cfg:     &config.LoggingConfig{Level: "debug", Format: "text", Output: "stderr"},
			wantErr: false,
		},
		{
			name:    "file output",
			cfg:     &config.LoggingConfig{Level: "warn", Format: "json", Output: filepath.Join(t.TempDir(), "log.json")},
			wantErr: false,
		},
		{
			name:    "stdout output",
			cfg:     &config.LoggingConfig{Level: "error", Format: "text", Output: "stdout"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if logger == nil && !tt.wantErr {
				t.Error("New() returned nil logger without error")
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.WithFile("x.csv").WithCheck("whitespace").Info("discarded")
	if err := logger.Sync(); err != nil {
		t.Errorf("nop Sync() returned %v", err)
	}
}

func TestWithFile(t *testing.T) {
	logger := NewNop()

	fileLogger := logger.WithFile("data.csv")
	if fileLogger == nil {
		t.Fatalf("WithFile() returned nil")
	}
	if fileLogger == logger {
		t.Error("WithFile() should return a new logger instance")
	}
}

func TestBuildWriters(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", ""} {
		if buildWriters(output) == nil {
			t.Errorf("buildWriters(%q) returned nil", output)
		}
	}

	// Unopenable file falls back instead of failing
	if buildWriters(filepath.Join(t.TempDir(), "missing", "x.log")) == nil {
		t.Error("buildWriters(bad path) returned nil")
	}
}

func TestLoggingOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logger-test.json")

	cfg := &config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: logPath,
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("test info message")
	logger.Debug("filtered debug message")
	logger.WithFile("orders.csv").WithCheck("whitespace").Warn("message with context")
	logger.WithFile("orders.csv").Infow("message with fields", "rows", 42)

	_ = logger.Sync()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	for _, want := range []string{"test info message", "orders.csv", `"check":"whitespace"`, `"rows":42`} {
		if !strings.Contains(contentStr, want) {
			t.Errorf("log file should contain %q", want)
		}
	}
	if strings.Contains(contentStr, "filtered debug message") {
		t.Error("debug message should be filtered at info level")
	}
}
