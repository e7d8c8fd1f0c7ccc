// Package tokens provides token counting for LLM prompt budgeting.
//
// Token estimation is based on the rule-of-thumb that approximately 4
// characters equals 1 token for English text. This provides a fast
// estimation without requiring a model-specific tokenizer.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// # Precise Counting
//
// For OpenAI-family providers, exact BPE counting via tiktoken is
// available. Counter selection is capability-checked once, not probed on
// every count:
//
//	counter := tokens.ForModel("gpt-4o", "openai", 4.0)
//	count := counter.Count(text)
//
// If the provider is not known to support precise counting, or loading
// the vocabulary fails, ForModel silently returns the estimating counter.
// Counting therefore never fails.
//
// # Inverse Conversion
//
// CharsForTokens converts a token budget back to an approximate character
// count, which is how budgets are applied to strings:
//
//	chars := tokens.CharsForTokens(500, 4.0) // 2000
package tokens
