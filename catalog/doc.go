// Package catalog resolves model context windows and output limits.
//
// The Catalog interface is injected wherever limits are needed, so tests
// can supply fixtures and deployments can override the built-in table:
//
//	window := catalog.ContextWindow(catalog.Builtin(), "gpt-4o", "openai")
//
// # Fallback Heuristics
//
// When a model is missing from the catalog, ContextWindow applies
// case-insensitive substring heuristics on the model id (gpt-4 family,
// gpt-3.5, claude, gemini, llama, mistral) and finally a conservative
// fallback constant. The lookups never return a non-positive value and
// never fail, so callers can budget against any model id.
//
// # Pricing
//
// Built-in entries carry per-1M-token USD pricing. EstimateCostUSD prices
// a single request; CostTracker accumulates usage across requests:
//
//	tracker := catalog.NewCostTracker()
//	tracker.Record("gpt-4o", 1200, 300)
//	cost := tracker.TotalCostUSD(catalog.Builtin())
package catalog
