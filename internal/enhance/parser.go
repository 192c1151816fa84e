package enhance

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"
)

// minEntryLen is the minimum trimmed length for a suggestion or change entry.
// Shorter entries ("Good", "Fix", stray bullets) carry no signal and are dropped.
const minEntryLen = 5

// fallbackParagraphLen is the minimum trimmed length for the first-paragraph
// fallback when no labeled enhanced-text section is found.
const fallbackParagraphLen = 50

var (
	delimitedJSONRe = regexp.MustCompile(`(?is)###\s*OUTPUT\s*\(valid JSON\)\s*(.*?)\s*###\s*END`)

	fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\n?(.*?)```")

	bulletPrefixRe = regexp.MustCompile(`^\s*(?:[•+\-*]|\d+[.)])\s*`)

	paragraphBreakRe = regexp.MustCompile(`\n\s*\n`)
)

// enhancedTextPatterns are tried in order; the first non-empty capture wins.
var enhancedTextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:enhanced version|enhanced content|improved version|improved content)\s*:\s*\n(.*?)(?:\n\s*\n|\z)`),
	regexp.MustCompile(`(?is)here(?:'s| is) the enhanced[^\n]*\n(.*?)(?:\n\s*\n|\z)`),
}

// Label sets for the list sections. Longer labels come first inside each
// alternation so "improvements made" is not swallowed by "improvements".
var suggestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:additional suggestions|suggestions|recommendations)\s*:\s*\n(.*?)(?:\n\s*\n|\z)`),
	regexp.MustCompile(`(?is)(?:key improvements|improvements made)\s*:\s*\n(.*?)(?:\n\s*\n|\z)`),
}

var changePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:changes made|key improvements|improvements)\s*:\s*\n(.*?)(?:\n\s*\n|\z)`),
	regexp.MustCompile(`(?is)(?:what i changed|modifications)\s*:\s*\n(.*?)(?:\n\s*\n|\z)`),
}

// Parse converts raw model output into a ParsedEnhancement. It never fails:
// a delimited JSON block is preferred, then any bare JSON object, then labeled
// sections extracted heuristically. Once a JSON object decodes, the heuristic
// stage is skipped entirely even if the decoded fields are empty.
func Parse(raw string, provider string) ParsedEnhancement {
	text := normalize(raw)

	if result, ok := parseDelimitedJSON(text, provider); ok {
		return result
	}
	if result, ok := parseBareJSON(text, provider); ok {
		return result
	}
	return parseHeuristic(text, provider)
}

func normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}

func parseDelimitedJSON(text, provider string) (ParsedEnhancement, bool) {
	m := delimitedJSONRe.FindStringSubmatch(text)
	if m == nil {
		return ParsedEnhancement{}, false
	}
	return decodeObject(m[1], provider)
}

func parseBareJSON(text, provider string) (ParsedEnhancement, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start >= end {
		return ParsedEnhancement{}, false
	}
	return decodeObject(text[start:end+1], provider)
}

func decodeObject(span, provider string) (ParsedEnhancement, bool) {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(span), &decoded); err != nil {
		return ParsedEnhancement{}, false
	}
	result := ParsedEnhancement{
		EnhancedText: stringField(decoded["enhancedText"]),
		Suggestions:  filterEntries(decoded["suggestions"]),
		Changes:      filterEntries(decoded["changes"]),
		Provider:     provider,
	}
	return result, true
}

func stringField(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

// filterEntries keeps only string array entries whose trimmed length meets the
// minimum; numbers, nested objects, and short strings are discarded.
func filterEntries(value any) []string {
	out := []string{}
	items, ok := value.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(s)
		if utf8.RuneCountInString(trimmed) >= minEntryLen {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseHeuristic(text, provider string) ParsedEnhancement {
	return ParsedEnhancement{
		EnhancedText: extractEnhancedText(text),
		Suggestions:  extractList(text, suggestionPatterns),
		Changes:      extractList(text, changePatterns),
		Provider:     provider,
	}
}

func extractEnhancedText(text string) string {
	if text == "" {
		return ""
	}
	for _, re := range enhancedTextPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if captured := strings.TrimSpace(m[1]); captured != "" {
				return captured
			}
		}
	}
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		if captured := strings.TrimSpace(m[1]); captured != "" {
			return captured
		}
	}
	for _, paragraph := range splitParagraphs(text) {
		if utf8.RuneCountInString(paragraph) > fallbackParagraphLen {
			return paragraph
		}
	}
	return text
}

// extractList pulls bullet lines out of the first labeled section that yields
// at least one qualifying line. There is deliberately no whole-document
// fallback for lists, and no de-duplication against the other list: the label
// sets overlap ("key improvements" feeds both), which mirrors how the model
// output conventions evolved.
func extractList(text string, patterns []*regexp.Regexp) []string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		entries := splitBulletLines(m[1])
		if len(entries) > 0 {
			return entries
		}
	}
	return []string{}
}

func splitBulletLines(section string) []string {
	entries := []string{}
	for _, line := range strings.Split(section, "\n") {
		stripped := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
		if utf8.RuneCountInString(stripped) >= minEntryLen {
			entries = append(entries, stripped)
		}
	}
	return entries
}

func splitParagraphs(text string) []string {
	blocks := paragraphBreakRe.Split(text, -1)
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
