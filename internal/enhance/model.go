package enhance

// ParsedEnhancement is the structured form of a model's free-text reply.
// EnhancedText is always a string and the two lists are always non-nil so the
// JSON shape stays stable for API consumers.
type ParsedEnhancement struct {
	EnhancedText string   `json:"enhancedText"`
	Suggestions  []string `json:"suggestions"`
	Changes      []string `json:"changes"`
	Provider     string   `json:"provider,omitempty"`
}
