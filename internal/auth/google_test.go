package auth

import (
	"strings"
	"testing"
	"time"
)

func TestStateStoreConsumeOnce(t *testing.T) {
	var store stateStore
	store.put("abc")

	if !store.consume("abc") {
		t.Fatalf("expected first consume to succeed")
	}
	if store.consume("abc") {
		t.Fatalf("expected second consume to fail")
	}
	if store.consume("never-issued") {
		t.Fatalf("expected unknown state to fail")
	}
}

func TestStateStoreExpiry(t *testing.T) {
	var store stateStore
	store.put("old")
	store.mu.Lock()
	store.issued["old"] = time.Now().Add(-stateTTL - time.Second)
	store.mu.Unlock()

	if store.consume("old") {
		t.Fatalf("expected expired state to fail")
	}
}

func TestAppendToken(t *testing.T) {
	tests := []struct {
		name     string
		redirect string
		want     string
	}{
		{name: "bare url", redirect: "https://app.example.com/login", want: "https://app.example.com/login?token=tok"},
		{name: "existing query", redirect: "https://app.example.com/login?next=%2Fjobs", want: "https://app.example.com/login?next=%2Fjobs&token=tok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appendToken(tt.redirect, "tok"); got != tt.want {
				t.Fatalf("appendToken = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	if (&GoogleService{}).Enabled() {
		t.Fatalf("expected unconfigured service to be disabled")
	}
	svc := NewGoogleService(Config{ClientID: "id", ClientSecret: "secret"}, nil)
	if !svc.Enabled() {
		t.Fatalf("expected configured service to be enabled")
	}
}

func TestNewStateIsRandom(t *testing.T) {
	a, err := newState()
	if err != nil {
		t.Fatalf("newState: %v", err)
	}
	b, err := newState()
	if err != nil {
		t.Fatalf("newState: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct states")
	}
	if strings.ContainsAny(a, "+/=") {
		t.Fatalf("expected url-safe state, got %q", a)
	}
}
