package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	log.Info().Int("attempt", 2).Msg("guess submitted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Log line is not JSON: %v", err)
	}
	if entry["message"] != "guess submitted" || entry["component"] != "wordle" {
		t.Errorf("Unexpected entry %v", entry)
	}
	if entry["attempt"] != float64(2) {
		t.Errorf("Expected attempt field 2, got %v", entry["attempt"])
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.log")

	log, closeFn, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Debug().Msg("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `"message":"hello"`) {
		t.Errorf("Log file missing entry: %q", content)
	}

	if _, _, err := New(path, "loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
