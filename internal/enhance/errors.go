package enhance

import "errors"

var (
	// ErrInvalidInput indicates a request that fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrProviderUnavailable indicates the LLM provider call failed.
	ErrProviderUnavailable = errors.New("enhancement provider unavailable")
)
