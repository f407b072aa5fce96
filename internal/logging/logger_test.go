package logging_test

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Sebkah/99draft-sub000/internal/logging"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to warn", "invalid", log.WarnLevel},
		{"empty defaults to warn", "", log.WarnLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger := logging.New(tc.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}

			if logger.GetLevel() != tc.expected {
				t.Errorf("expected level %v, got %v", tc.expected, logger.GetLevel())
			}
		})
	}
}

func TestDefault(t *testing.T) {
	logger := logging.Default()
	if logger == nil {
		t.Fatal("Default returned nil logger")
	}
}

func TestSetDefault(t *testing.T) {
	original := logging.Default()
	defer logging.SetDefault(original)

	newLogger := logging.New("error")
	logging.SetDefault(newLogger)

	if logging.Default() != newLogger {
		t.Error("SetDefault did not change the default logger")
	}
}

func TestSetLevel(t *testing.T) {
	original := logging.Default()
	defer logging.SetDefault(original)

	logging.SetDefault(logging.New("info"))

	logging.SetLevel("debug")
	if logging.Default().GetLevel() != log.DebugLevel {
		t.Error("SetLevel to debug failed")
	}
}
