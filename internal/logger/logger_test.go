package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func captureOutput(t *testing.T, fn func()) []map[string]any {
	t.Helper()

	var buf bytes.Buffer
	original := Default()
	SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(original)

	fn()

	var entries []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]any
		if err := dec.Decode(&entry); err != nil {
			t.Fatalf("failed to decode log entry: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestInfoLogsStructuredEntry(t *testing.T) {
	entries := captureOutput(t, func() {
		Info("pipeline run finished", slog.String("status", "published"))
	})

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["msg"] != "pipeline run finished" {
		t.Errorf("msg = %v, want 'pipeline run finished'", entries[0]["msg"])
	}
	if entries[0]["status"] != "published" {
		t.Errorf("status = %v, want published", entries[0]["status"])
	}
	if entries[0]["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entries[0]["level"])
	}
}

func TestWithRunIDAttachesAttribute(t *testing.T) {
	entries := captureOutput(t, func() {
		WithRunID("run-123").Warn("tweet failed")
	})

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["run_id"] != "run-123" {
		t.Errorf("run_id = %v, want run-123", entries[0]["run_id"])
	}
	if entries[0]["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entries[0]["level"])
	}
}

func TestWithRequestIDAttachesAttribute(t *testing.T) {
	entries := captureOutput(t, func() {
		WithRequestID("req-9").Info("handled")
	})

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["request_id"] != "req-9" {
		t.Errorf("request_id = %v, want req-9", entries[0]["request_id"])
	}
}
