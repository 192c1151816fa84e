package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestWriteEmitsJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Info("request.complete", map[string]any{"status": 200, "path": "/jobs"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry["level"] != "info" || entry["msg"] != "request.complete" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["path"] != "/jobs" {
		t.Fatalf("expected field passthrough, got %v", entry)
	}
	if entry["ts"] == nil {
		t.Fatalf("expected timestamp")
	}
}

func TestReservedKeysWin(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Error("boom", map[string]any{"level": "spoofed", "msg": "spoofed"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["level"] != "error" || entry["msg"] != "boom" {
		t.Fatalf("expected reserved keys to win, got %v", entry)
	}
}
