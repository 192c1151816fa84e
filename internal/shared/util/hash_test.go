package util

import "testing"

func TestOwnerKey(t *testing.T) {
	id := "google:12345"
	got := OwnerKey(id)
	if got != OwnerKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if got == OwnerKey("google:67890") {
		t.Fatalf("expected distinct keys for distinct users")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("key contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
