package tokens

import (
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// English text averages ~4 characters per token across GPT / Claude / Gemini.
const DefaultCharsPerToken = 4.0

// Counter counts or estimates tokens for text.
type Counter interface {
	// Count returns the number of tokens in the given text. It is 0 only
	// for empty text and never negative.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// EstimatingCounter uses a character-to-token ratio for estimation.
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	// Default is 4, which works well for English text.
	CharsPerToken float64
}

// NewEstimatingCounter creates a token counter with the default ratio.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{
		CharsPerToken: DefaultCharsPerToken,
	}
}

// NewEstimatingCounterWithRatio creates a token counter with a custom ratio.
// If charsPerToken is <= 0, the default ratio (4.0) is used.
func NewEstimatingCounterWithRatio(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{
		CharsPerToken: charsPerToken,
	}
}

// Count estimates the number of tokens in the given text.
// Empty text counts as 0; any non-empty text counts as at least 1.
// Actual token counts may vary based on the specific tokenizer used.
func (c *EstimatingCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	ratio := c.CharsPerToken
	if ratio <= 0 {
		ratio = DefaultCharsPerToken
	}
	// Count runes rather than bytes so multi-byte text is not over-counted.
	n := int(float64(utf8.RuneCountInString(text))/ratio + 0.5)
	if n < 1 {
		return 1
	}
	return n
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *EstimatingCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// EstimateTokens is a convenience function using the default estimator.
func EstimateTokens(text string) int {
	return NewEstimatingCounter().Count(text)
}

// CharsForTokens converts a token count to an approximate character count.
// Negative token counts clamp to 0.
func CharsForTokens(count int, charsPerToken float64) int {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	chars := int(float64(count) * charsPerToken)
	if chars < 0 {
		return 0
	}
	return chars
}
