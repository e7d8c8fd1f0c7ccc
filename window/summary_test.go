package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBudgetSummary(t *testing.T) {
	b := Budget{
		ModelContextWindow:        128000,
		SystemPromptTokens:        5000,
		ResponseReserveTokens:     4096,
		ConversationHistoryTokens: 10000,
		TranscriptFittedTokens:    30000,
		StrategyUsed:              "none",
	}

	// used = 45000 + 4096 reserve; utilisation = 45000 / 123904.
	assert.Equal(t, "Context: 49K/128K tokens (36%)", FormatBudgetSummary(b))
}

func TestFormatBudgetSummary_Truncated(t *testing.T) {
	b := Budget{
		ModelContextWindow:     128000,
		ResponseReserveTokens:  4096,
		TranscriptFittedTokens: 86000,
		StrategyUsed:           "head_tail",
		IsTruncated:            true,
	}

	got := FormatBudgetSummary(b)
	assert.Contains(t, got, "• transcript head_tail")
}

func TestFormatBudgetSummary_MillionWindow(t *testing.T) {
	b := Budget{
		ModelContextWindow:     1048576,
		TranscriptFittedTokens: 500,
	}

	assert.Equal(t, "Context: 500/1.0M tokens (0%)", FormatBudgetSummary(b))
}

func TestFormatTokenCount(t *testing.T) {
	tests := []struct {
		in       int
		expected string
	}{
		{in: 0, expected: "0"},
		{in: 999, expected: "999"},
		{in: 1000, expected: "1K"},
		{in: 45000, expected: "45K"},
		{in: 999999, expected: "1000K"},
		{in: 1000000, expected: "1.0M"},
		{in: 1500000, expected: "1.5M"},
	}

	for _, tt := range tests {
		if got := formatTokenCount(tt.in); got != tt.expected {
			t.Errorf("formatTokenCount(%d) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
