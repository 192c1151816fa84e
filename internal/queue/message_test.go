package queue

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	msg := NewMessage("doc-1", "user-1")

	payload, err := EncodeMessage(msg)
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	decoded, err := DecodeMessage(payload)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if decoded.DocumentID != "doc-1" || decoded.UserID != "user-1" {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
	if decoded.Version != messageVersion {
		t.Fatalf("expected version %d, got %d", messageVersion, decoded.Version)
	}
	if decoded.EnqueuedAt == "" {
		t.Fatalf("expected enqueuedAt timestamp")
	}
}

func TestDecodeRejectsMissingDocument(t *testing.T) {
	_, err := DecodeMessage([]byte(`{"userId":"user-1","version":1}`))
	if err == nil || !strings.Contains(err.Error(), "documentId") {
		t.Fatalf("expected documentId validation error, got %v", err)
	}
}

func TestDecodeRejectsMissingVersion(t *testing.T) {
	_, err := DecodeMessage([]byte(`{"documentId":"doc-1"}`))
	if err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("expected version validation error, got %v", err)
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, err := DecodeMessage([]byte("{nope")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
