package openai

import (
	"fmt"
	"strings"

	"careerhub-backend/internal/llm"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPromptEnhance = `You are a professional resume writer. Rewrite the section the user provides so it is stronger, specific, and achievement-oriented. Reply with exactly this structure:

### OUTPUT (valid JSON)
{"enhancedText": "<the rewritten section>", "suggestions": ["<further suggestion>"], "changes": ["<change you made>"]}
### END

Do not add text outside the markers.`

// BuildEnhancePrompt creates the chat messages for a section enhancement request.
func BuildEnhancePrompt(input llm.EnhanceInput) []Message {
	return []Message{
		{Role: "system", Content: systemPromptEnhance},
		{Role: "user", Content: buildEnhanceUserPrompt(input)},
	}
}

func buildEnhanceUserPrompt(input llm.EnhanceInput) string {
	section := strings.TrimSpace(input.SectionType)
	if section == "" {
		section = "general"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Section type: %s\n", section)
	if role := strings.TrimSpace(input.TargetRole); role != "" {
		fmt.Fprintf(&b, "Target role: %s\n", role)
	}
	if jd := strings.TrimSpace(input.JobDescription); jd != "" {
		fmt.Fprintf(&b, "\nJob description:\n%s\n", jd)
	}
	fmt.Fprintf(&b, "\nSection content:\n%s", input.Content)
	return b.String()
}
