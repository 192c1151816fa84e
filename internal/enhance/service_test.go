package enhance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careerhub-backend/internal/llm"
)

type scriptedLLM struct {
	replies []string
	errs    []error
	calls   int
	inputs  []llm.EnhanceInput
}

func (s *scriptedLLM) EnhanceSection(ctx context.Context, input llm.EnhanceInput) (string, error) {
	idx := s.calls
	s.calls++
	s.inputs = append(s.inputs, input)
	var reply string
	var err error
	if idx < len(s.replies) {
		reply = s.replies[idx]
	}
	if idx < len(s.errs) {
		err = s.errs[idx]
	}
	return reply, err
}

func TestServiceEnhanceParsesProviderReply(t *testing.T) {
	fake := &scriptedLLM{replies: []string{
		"### OUTPUT (valid JSON)\n" +
			`{"enhancedText":"Shipped three major releases","suggestions":["Quantify the release impact"],"changes":["Replaced weak verbs"]}` +
			"\n### END",
	}}
	svc := NewService(fake, "openai")

	got, err := svc.Enhance(context.Background(), "req-1", Request{
		SectionType: "experience",
		Content:     "I did some releases",
		TargetRole:  "Engineering Manager",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EnhancedText != "Shipped three major releases" {
		t.Fatalf("unexpected enhancedText: %q", got.EnhancedText)
	}
	if got.Provider != "openai" {
		t.Fatalf("expected provider stamped, got %q", got.Provider)
	}
	if len(fake.inputs) != 1 || fake.inputs[0].TargetRole != "Engineering Manager" {
		t.Fatalf("expected input forwarded to provider, got %+v", fake.inputs)
	}
}

func TestServiceEnhanceValidatesContent(t *testing.T) {
	svc := NewService(&scriptedLLM{}, "openai")

	_, err := svc.Enhance(context.Background(), "req-1", Request{Content: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.Enhance(context.Background(), "req-2", Request{Content: strings.Repeat("x", maxContentChars+1)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized content, got %v", err)
	}
}

func TestServiceEnhanceWrapsProviderError(t *testing.T) {
	fake := &scriptedLLM{errs: []error{errors.New("boom")}}
	svc := NewService(fake, "openai")

	_, err := svc.Enhance(context.Background(), "req-1", Request{Content: "text"})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestServiceEnhanceRetriesTransientFailure(t *testing.T) {
	fake := &scriptedLLM{
		replies: []string{"", `{"enhancedText":"recovered after retry"}`},
		errs:    []error{errors.New("openai http status 503: overloaded"), nil},
	}
	svc := NewService(fake, "openai")

	got, err := svc.Enhance(context.Background(), "req-1", Request{Content: "text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.calls != 2 {
		t.Fatalf("expected one retry, got %d calls", fake.calls)
	}
	if got.EnhancedText != "recovered after retry" {
		t.Fatalf("unexpected enhancedText: %q", got.EnhancedText)
	}
}

func TestShouldRetryLLM(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", context.DeadlineExceeded, true},
		{"server_error", errors.New("openai error: server_error"), true},
		{"http_5xx", errors.New("openai http status 502: bad gateway"), true},
		{"timeout", errors.New("openai request timeout: Client.Timeout exceeded"), true},
		{"conn_reset", errors.New("read tcp: connection reset by peer"), true},
		{"bad_request", errors.New("openai http status 400: invalid model"), false},
		{"auth", errors.New("openai http status 401: bad key"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldRetryLLM(tc.err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
