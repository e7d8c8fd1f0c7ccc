package catalog

import "sync"

// EstimateCostUSD returns the USD cost of a request against the given
// model at its catalog pricing. Token counts below zero clamp to zero.
func EstimateCostUSD(info ModelInfo, inputTokens, outputTokens int) float64 {
	if inputTokens < 0 {
		inputTokens = 0
	}
	if outputTokens < 0 {
		outputTokens = 0
	}
	in := float64(inputTokens) / 1_000_000 * info.InputPricePer1M
	out := float64(outputTokens) / 1_000_000 * info.OutputPricePer1M
	return in + out
}

// Usage accumulates token usage for a model.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Requests     int
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.Requests += other.Requests
}

// TotalTokens returns the total tokens used.
func (u Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// CostTracker accumulates token usage per model id. Safe for concurrent use.
type CostTracker struct {
	mu     sync.RWMutex
	totals map[string]Usage
}

// NewCostTracker creates an empty cost tracker.
func NewCostTracker() *CostTracker {
	return &CostTracker{
		totals: make(map[string]Usage),
	}
}

// Record adds a usage record for the given model id.
func (t *CostTracker) Record(modelID string, inputTokens, outputTokens int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	u := t.totals[modelID]
	u.InputTokens += inputTokens
	u.OutputTokens += outputTokens
	u.Requests++
	t.totals[modelID] = u
}

// Usage returns the accumulated usage for a model id.
func (t *CostTracker) Usage(modelID string) Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[modelID]
}

// Summary returns a copy of all usage totals keyed by model id.
func (t *CostTracker) Summary() map[string]Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]Usage, len(t.totals))
	for k, v := range t.totals {
		out[k] = v
	}
	return out
}

// TotalCostUSD prices the accumulated usage against the given catalog.
// Models absent from the catalog contribute zero.
func (t *CostTracker) TotalCostUSD(c Catalog) float64 {
	if c == nil {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var total float64
	for id, u := range t.totals {
		if info, ok := c.Lookup(id, ""); ok {
			total += EstimateCostUSD(info, u.InputTokens, u.OutputTokens)
		}
	}
	return total
}
