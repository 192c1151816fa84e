package evaluate

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"careerhub-backend/internal/llm"
	"careerhub-backend/internal/shared/telemetry"
)

// Grades are the three letter grades assigned to a resume.
type Grades struct {
	Overall      string `json:"overall"`
	Consistency  string `json:"consistency"`
	Completeness string `json:"completeness"`
}

const fallbackGrade = "B"

var gradeRe = regexp.MustCompile(`\b([ABC][+-]?|F)\b`)

var validGrades = map[string]bool{
	"A+": true, "A": true, "A-": true,
	"B+": true, "B": true, "B-": true,
	"C+": true, "C": true, "C-": true,
	"F": true,
}

// ErrInvalidInput indicates an evaluation request that fails validation.
var ErrInvalidInput = errors.New("invalid input")

var gradeLabels = map[string]string{
	"overall":      "Overall Grade",
	"consistency":  "Vertical Consistency Grade",
	"completeness": "Completeness Grade",
}

// Service grades resumes by asking the model for one letter grade per axis.
type Service struct {
	LLM llm.PromptClient
}

func NewService(client llm.PromptClient) *Service {
	return &Service{LLM: client}
}

// Evaluate returns the three grades for the resume text. A model failure on
// one axis degrades that axis to the fallback grade rather than failing the
// whole evaluation.
func (s *Service) Evaluate(ctx context.Context, resumeText string) (Grades, error) {
	if strings.TrimSpace(resumeText) == "" {
		return Grades{}, fmt.Errorf("%w: resume text is required", ErrInvalidInput)
	}
	if s.LLM == nil {
		return Grades{}, errors.New("evaluation model not configured")
	}

	grades := make(map[string]string, len(gradeLabels))
	for axis, label := range gradeLabels {
		raw, err := s.LLM.Complete(ctx, buildEvaluationPrompt(label, resumeText))
		if err != nil {
			telemetry.Error("evaluate.axis_failed", map[string]any{
				"axis":  axis,
				"error": err.Error(),
			})
			grades[axis] = fallbackGrade
			continue
		}
		grades[axis] = ExtractGrade(raw)
	}

	return Grades{
		Overall:      grades["overall"],
		Consistency:  grades["consistency"],
		Completeness: grades["completeness"],
	}, nil
}

func buildEvaluationPrompt(gradeLabel, resumeText string) string {
	return fmt.Sprintf(
		"You are a professional resume evaluation expert.\n"+
			"Evaluate this resume and provide a %s (A+, A, A-, B+, B, B-, C+, C, C-, F).\n\n"+
			"Resume:\n%s\n\n"+
			"Respond with ONLY the letter grade:",
		gradeLabel, resumeText,
	)
}

// ExtractGrade pulls the first valid letter grade out of a model reply.
// Replies with no recognizable grade default to B.
func ExtractGrade(response string) string {
	response = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(response), "assistant:"))
	if m := gradeRe.FindStringSubmatch(response); m != nil && validGrades[m[1]] {
		return m[1]
	}
	return fallbackGrade
}
