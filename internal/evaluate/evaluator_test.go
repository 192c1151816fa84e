package evaluate

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExtractGrade(t *testing.T) {
	cases := []struct {
		name     string
		response string
		want     string
	}{
		{"bare_grade", "A", "A"},
		{"grade_in_sentence", "The resume earns a B+ overall.", "B+"},
		{"fail_grade", "F", "F"},
		{"role_prefix", "assistant: C-", "C-"},
		{"no_grade", "looks pretty good to me", "B"},
		{"empty", "", "B"},
		{"lowercase_only", "grade: a", "B"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractGrade(tc.response); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

type mapPromptClient struct {
	reply func(prompt string) (string, error)
}

func (m mapPromptClient) Complete(ctx context.Context, prompt string) (string, error) {
	return m.reply(prompt)
}

func TestEvaluateGradesEachAxis(t *testing.T) {
	svc := NewService(mapPromptClient{reply: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "Overall Grade"):
			return "A-", nil
		case strings.Contains(prompt, "Vertical Consistency Grade"):
			return "B", nil
		case strings.Contains(prompt, "Completeness Grade"):
			return "C+", nil
		}
		return "", errors.New("unexpected prompt")
	}})

	grades, err := svc.Evaluate(context.Background(), "Name: Jordan\nEducation: BSc")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if grades.Overall != "A-" || grades.Consistency != "B" || grades.Completeness != "C+" {
		t.Fatalf("unexpected grades: %+v", grades)
	}
}

func TestEvaluateAxisFailureFallsBack(t *testing.T) {
	svc := NewService(mapPromptClient{reply: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Overall Grade") {
			return "", errors.New("model down")
		}
		return "A", nil
	}})

	grades, err := svc.Evaluate(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if grades.Overall != "B" {
		t.Fatalf("expected fallback B, got %q", grades.Overall)
	}
	if grades.Consistency != "A" || grades.Completeness != "A" {
		t.Fatalf("unexpected grades: %+v", grades)
	}
}

func TestEvaluateRequiresText(t *testing.T) {
	svc := NewService(mapPromptClient{reply: func(string) (string, error) { return "A", nil }})

	if _, err := svc.Evaluate(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
