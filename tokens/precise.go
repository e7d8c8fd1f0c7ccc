package tokens

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// preciseProviders lists providers whose models use tiktoken BPE
// vocabularies and therefore support exact counting.
var preciseProviders = map[string]bool{
	"openai":       true,
	"azure_openai": true,
}

// PreciseCounter counts tokens with a model-specific BPE encoding.
type PreciseCounter struct {
	enc *tiktoken.Tiktoken
}

// NewPreciseCounter creates a counter for the given model's encoding.
// Returns an error when no encoding is known for the model or the
// vocabulary cannot be loaded.
func NewPreciseCounter(model string) (*PreciseCounter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("tokens: encoding for model %q: %w", model, err)
	}
	return &PreciseCounter{enc: enc}, nil
}

// Count returns the exact number of tokens in the given text.
func (c *PreciseCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *PreciseCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// ForModel returns the best available counter for a model/provider pair.
// Precise counting is attempted only for providers known to use tiktoken
// vocabularies; on any failure the estimating counter is returned, so the
// result is always usable. Callers should resolve a counter once per
// budgeting pass rather than per count.
func ForModel(model, provider string, charsPerToken float64) Counter {
	if preciseProviders[provider] && model != "" {
		if pc, err := NewPreciseCounter(model); err == nil {
			return pc
		}
	}
	return NewEstimatingCounterWithRatio(charsPerToken)
}

// CountTokens counts the tokens in text using the best counter for the
// model/provider pair. It never fails and never returns a negative count.
func CountTokens(text, model, provider string, charsPerToken float64) int {
	return ForModel(model, provider, charsPerToken).Count(text)
}
