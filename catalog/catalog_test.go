package catalog

import (
	"math"
	"testing"
)

func TestBuiltin_Lookup(t *testing.T) {
	tests := []struct {
		name          string
		modelID       string
		provider      string
		wantWindow    int
		wantMaxOutput int
	}{
		{
			name:          "gpt-4o",
			modelID:       "gpt-4o",
			provider:      "openai",
			wantWindow:    128000,
			wantMaxOutput: 16384,
		},
		{
			name:          "gpt-3.5-turbo",
			modelID:       "gpt-3.5-turbo",
			provider:      "openai",
			wantWindow:    16385,
			wantMaxOutput: 4096,
		},
		{
			name:          "claude sonnet 4",
			modelID:       "claude-sonnet-4-20250514",
			provider:      "anthropic",
			wantWindow:    200000,
			wantMaxOutput: 8192,
		},
		{
			name:          "gemini flash",
			modelID:       "gemini-2.0-flash",
			provider:      "gemini",
			wantWindow:    1048576,
			wantMaxOutput: 8192,
		},
		{
			name:          "gemma small",
			modelID:       "gemma-3-1b-it",
			provider:      "gemini",
			wantWindow:    32768,
			wantMaxOutput: 8192,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := Builtin().Lookup(tt.modelID, tt.provider)
			if !ok {
				t.Fatalf("Lookup(%q, %q) missed", tt.modelID, tt.provider)
			}
			if info.ContextWindow != tt.wantWindow {
				t.Errorf("ContextWindow = %d, expected %d", info.ContextWindow, tt.wantWindow)
			}
			if info.MaxOutputTokens != tt.wantMaxOutput {
				t.Errorf("MaxOutputTokens = %d, expected %d", info.MaxOutputTokens, tt.wantMaxOutput)
			}
		})
	}
}

func TestBuiltin_Lookup_ProviderFilter(t *testing.T) {
	// gpt-4o exists for both openai and copilot; the filter must pick
	// the right entry.
	info, ok := Builtin().Lookup("gpt-4o", "copilot")
	if !ok {
		t.Fatal("expected copilot gpt-4o entry")
	}
	if info.Provider != "copilot" {
		t.Errorf("Provider = %q, expected copilot", info.Provider)
	}

	// Empty provider matches the first entry in catalog order.
	info, ok = Builtin().Lookup("gpt-4o", "")
	if !ok {
		t.Fatal("expected a gpt-4o entry without provider filter")
	}
	if info.Provider != "openai" {
		t.Errorf("Provider = %q, expected openai", info.Provider)
	}

	if _, ok := Builtin().Lookup("gpt-4o", "anthropic"); ok {
		t.Error("expected miss for wrong provider")
	}
}

func TestContextWindow_Heuristics(t *testing.T) {
	tests := []struct {
		name     string
		modelID  string
		expected int
	}{
		{name: "unknown claude variant", modelID: "claude-9-experimental", expected: 200000},
		{name: "claude mixed case", modelID: "Claude-Next", expected: 200000},
		{name: "gpt-4 variant", modelID: "gpt-4.1-preview", expected: 128000},
		{name: "gpt4 no dash", modelID: "gpt4-custom", expected: 128000},
		{name: "gpt-3.5 variant", modelID: "gpt-3.5-turbo-0125", expected: 16385},
		{name: "gemini variant", modelID: "gemini-3.0-ultra", expected: 1048576},
		{name: "llama", modelID: "my-llama-finetune", expected: 128000},
		{name: "mistral", modelID: "mistral-large-latest", expected: 32768},
		{name: "unknown model", modelID: "qwen-7b", expected: FallbackContextWindow},
		{name: "empty model", modelID: "", expected: FallbackContextWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContextWindow(Builtin(), tt.modelID, ""); got != tt.expected {
				t.Errorf("ContextWindow(%q) = %d, expected %d", tt.modelID, got, tt.expected)
			}
		})
	}
}

func TestContextWindow_NilCatalog(t *testing.T) {
	if got := ContextWindow(nil, "claude-sonnet-4", ""); got != 200000 {
		t.Errorf("ContextWindow = %d, expected heuristic 200000", got)
	}
	if got := ContextWindow(nil, "mystery", ""); got != FallbackContextWindow {
		t.Errorf("ContextWindow = %d, expected fallback", got)
	}
}

func TestMaxOutputTokens(t *testing.T) {
	if got := MaxOutputTokens(Builtin(), "gpt-4o", "openai"); got != 16384 {
		t.Errorf("MaxOutputTokens = %d, expected 16384", got)
	}
	if got := MaxOutputTokens(Builtin(), "unknown-model", ""); got != FallbackMaxOutputTokens {
		t.Errorf("MaxOutputTokens = %d, expected fallback", got)
	}
	if got := MaxOutputTokens(nil, "gpt-4o", "openai"); got != FallbackMaxOutputTokens {
		t.Errorf("MaxOutputTokens = %d, expected fallback for nil catalog", got)
	}
}

func TestModelsForProvider(t *testing.T) {
	openai := ModelsForProvider("openai")
	if len(openai) != 4 {
		t.Errorf("len(openai models) = %d, expected 4", len(openai))
	}
	for _, m := range openai {
		if m.Provider != "openai" {
			t.Errorf("unexpected provider %q in openai listing", m.Provider)
		}
	}

	if got := ModelsForProvider("nonexistent"); len(got) != 0 {
		t.Errorf("expected empty slice for unknown provider, got %d entries", len(got))
	}
}

func TestEstimateCostUSD(t *testing.T) {
	info := ModelInfo{InputPricePer1M: 2.50, OutputPricePer1M: 10.00}

	got := EstimateCostUSD(info, 1_000_000, 100_000)
	if math.Abs(got-3.50) > 1e-9 {
		t.Errorf("EstimateCostUSD = %v, expected 3.50", got)
	}

	if got := EstimateCostUSD(info, -5, -5); got != 0 {
		t.Errorf("EstimateCostUSD with negative tokens = %v, expected 0", got)
	}
}

func TestCostTracker(t *testing.T) {
	tracker := NewCostTracker()
	tracker.Record("gpt-4o", 1_000_000, 0)
	tracker.Record("gpt-4o", 0, 100_000)
	tracker.Record("unlisted-model", 500, 500)

	u := tracker.Usage("gpt-4o")
	if u.InputTokens != 1_000_000 || u.OutputTokens != 100_000 || u.Requests != 2 {
		t.Errorf("unexpected usage: %+v", u)
	}
	if u.TotalTokens() != 1_100_000 {
		t.Errorf("TotalTokens = %d, expected 1100000", u.TotalTokens())
	}

	summary := tracker.Summary()
	if len(summary) != 2 {
		t.Errorf("len(summary) = %d, expected 2", len(summary))
	}

	// gpt-4o at $2.50/$10.00 per 1M: 2.50 + 1.00; the unlisted model
	// contributes nothing.
	cost := tracker.TotalCostUSD(Builtin())
	if math.Abs(cost-3.50) > 1e-9 {
		t.Errorf("TotalCostUSD = %v, expected 3.50", cost)
	}
}
