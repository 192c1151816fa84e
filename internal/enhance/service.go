package enhance

import (
	"context"
	"fmt"
	"strings"

	"careerhub-backend/internal/llm"
	"careerhub-backend/internal/shared/metrics"
	"careerhub-backend/internal/shared/telemetry"
)

const maxContentChars = 20000

// Request carries one section enhancement request.
type Request struct {
	SectionType    string `json:"sectionType"`
	Content        string `json:"content"`
	TargetRole     string `json:"targetRole,omitempty"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// Service runs the enhancement pipeline: validate, call the provider, parse.
type Service struct {
	LLM      llm.Client
	Provider string
}

func NewService(client llm.Client, provider string) *Service {
	return &Service{LLM: client, Provider: provider}
}

// Enhance validates the request, asks the provider for a rewrite, and parses
// the raw reply into a structured result. The parse step never fails; only
// validation and the provider call can return errors.
func (s *Service) Enhance(ctx context.Context, requestID string, req Request) (ParsedEnhancement, error) {
	if strings.TrimSpace(req.Content) == "" {
		return ParsedEnhancement{}, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if len(req.Content) > maxContentChars {
		return ParsedEnhancement{}, fmt.Errorf("%w: content exceeds %d characters", ErrInvalidInput, maxContentChars)
	}
	if s.LLM == nil {
		return ParsedEnhancement{}, ErrProviderUnavailable
	}

	metrics.IncEnhanceRequested()
	started := metrics.NowMillis()
	client := newRetryingLLM(s.LLM, requestID)
	raw, err := client.EnhanceSection(ctx, llm.EnhanceInput{
		SectionType:    req.SectionType,
		Content:        req.Content,
		TargetRole:     req.TargetRole,
		JobDescription: req.JobDescription,
	})
	metrics.ObserveLLMDurationMs(metrics.NowMillis() - started)
	if err != nil {
		metrics.IncEnhanceFailed()
		telemetry.Error("enhance.provider_failed", map[string]any{
			"requestId": requestID,
			"provider":  s.Provider,
			"error":     err.Error(),
		})
		return ParsedEnhancement{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	parsed := Parse(raw, s.Provider)
	telemetry.Info("enhance.completed", map[string]any{
		"requestId":       requestID,
		"provider":        s.Provider,
		"sectionType":     req.SectionType,
		"suggestionCount": len(parsed.Suggestions),
		"changeCount":     len(parsed.Changes),
	})
	return parsed, nil
}
