package s3

import (
	"io"
	"strings"
	"testing"
)

func TestApplyPrefixJoinsCleanSegments(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "empty prefix passes key through", prefix: "", key: "ab12/resume.pdf", want: "ab12/resume.pdf"},
		{name: "prefix prepended", prefix: "uploads", key: "ab12/resume.pdf", want: "uploads/ab12/resume.pdf"},
		{name: "slashes trimmed from both sides", prefix: "/uploads/", key: "/ab12/resume.pdf", want: "uploads/ab12/resume.pdf"},
		{name: "nested prefix kept intact", prefix: "uploads/prod", key: "ab12/resume.pdf", want: "uploads/prod/ab12/resume.pdf"},
		{name: "empty key yields bare prefix", prefix: "uploads", key: "", want: "uploads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestCountingReaderTracksBytes(t *testing.T) {
	payload := strings.Repeat("resume line\n", 100)
	counter := &countingReader{r: strings.NewReader(payload)}

	data, err := io.ReadAll(counter)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != payload {
		t.Fatalf("payload corrupted through counter")
	}
	if counter.n != int64(len(payload)) {
		t.Fatalf("expected %d bytes counted, got %d", len(payload), counter.n)
	}
}
