package catalog

import "strings"

// FallbackContextWindow is used when a model is unknown to both the
// catalog and the id heuristics (e.g. custom Ollama models).
const FallbackContextWindow = 16000

// FallbackMaxOutputTokens is used when a model's output limit is unknown.
const FallbackMaxOutputTokens = 4096

// ModelInfo holds the metadata for one model in a catalog.
type ModelInfo struct {
	// ID is the provider-specific model identifier, e.g. "gpt-4o".
	ID string

	// Name is the human-readable model name.
	Name string

	// Provider identifies the hosting provider, e.g. "openai", "anthropic".
	Provider string

	// ContextWindow is the maximum tokens in context. Must be > 0 to be
	// considered known.
	ContextWindow int

	// MaxOutputTokens is the maximum tokens the model can generate.
	MaxOutputTokens int

	// InputPricePer1M is the USD price per 1M input tokens (0 = free/included).
	InputPricePer1M float64

	// OutputPricePer1M is the USD price per 1M output tokens.
	OutputPricePer1M float64
}

// Catalog resolves model metadata. Implementations are read-only; a miss
// is reported through ok=false, never through an error.
type Catalog interface {
	// Lookup returns the metadata for a model id. The provider narrows
	// the match when non-empty.
	Lookup(modelID, provider string) (ModelInfo, bool)
}

// ContextWindow returns the context window size in tokens for a model.
//
// Catalog entries win; on a miss (or a non-positive catalog value),
// case-insensitive substring heuristics on the model id apply, and
// finally FallbackContextWindow. Never returns <= 0. A nil catalog is
// treated as an always-miss catalog.
func ContextWindow(c Catalog, modelID, provider string) int {
	if c != nil {
		if info, ok := c.Lookup(modelID, provider); ok && info.ContextWindow > 0 {
			return info.ContextWindow
		}
	}

	lower := strings.ToLower(modelID)
	switch {
	case strings.Contains(lower, "gpt-4") || strings.Contains(lower, "gpt4"):
		return 128000
	case strings.Contains(lower, "gpt-3.5"):
		return 16385
	case strings.Contains(lower, "claude"):
		return 200000
	case strings.Contains(lower, "gemini"):
		return 1048576
	case strings.Contains(lower, "llama"):
		return 128000
	case strings.Contains(lower, "mistral"):
		return 32768
	}

	return FallbackContextWindow
}

// MaxOutputTokens returns the maximum output tokens for a model, falling
// back to FallbackMaxOutputTokens on a catalog miss. Never returns <= 0.
func MaxOutputTokens(c Catalog, modelID, provider string) int {
	if c != nil {
		if info, ok := c.Lookup(modelID, provider); ok && info.MaxOutputTokens > 0 {
			return info.MaxOutputTokens
		}
	}
	return FallbackMaxOutputTokens
}
