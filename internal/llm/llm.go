package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for resume section enhancement.
type Client interface {
	EnhanceSection(ctx context.Context, input EnhanceInput) (string, error)
}

// PromptClient runs a free-form prompt and returns the raw completion text.
// Used by evaluation and cover-letter generation, which build their own prompts.
type PromptClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// EnhanceInput captures the inputs needed to enhance a resume section.
type EnhanceInput struct {
	SectionType    string
	Content        string
	TargetRole     string
	JobDescription string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// EnhanceSection returns ErrNotImplemented.
func (PlaceholderClient) EnhanceSection(ctx context.Context, input EnhanceInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotImplemented
}

// Complete returns ErrNotImplemented.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotImplemented
}
