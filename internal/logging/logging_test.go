package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestTraceRespectsToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	SetTraceEnabled(false)
	Trace("ignored", nil)
	SetTraceEnabled(true)
	Trace("nav.push", map[string]interface{}{"layer": 2})
	Close()

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0]["event"] != "nav.push" {
		t.Fatalf("expected nav.push event, got %v", entries[0]["event"])
	}
}

func TestWarnAndErrorAreAlwaysWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warn.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Warn("failed to open link %s: %v", "https://example.com", errors.New("no browser"))
	Error(errors.New("boom"))
	Error(nil)
	Close()

	entries := readEntries(t, path)
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	if entries[0]["level"] != "warning" {
		t.Fatalf("expected warning level, got %v", entries[0]["level"])
	}
	if !strings.Contains(entries[0]["msg"].(string), "no browser") {
		t.Fatalf("expected warning message to include cause, got %v", entries[0]["msg"])
	}
	if entries[1]["error"] != "boom" {
		t.Fatalf("expected error field boom, got %v", entries[1]["error"])
	}
}
