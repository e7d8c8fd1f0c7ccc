package window

import (
	"fmt"
	"strconv"
)

// FormatBudgetSummary renders a short human-readable budget line for
// status displays, e.g. "Context: 45K/128K tokens (35%)". When the
// transcript was truncated, the applied strategy is appended:
// "Context: 126K/128K tokens (99%) • transcript head_tail".
func FormatBudgetSummary(b Budget) string {
	used := b.TotalUsedTokens() + b.ResponseReserveTokens

	summary := fmt.Sprintf("Context: %s/%s tokens (%.0f%%)",
		formatTokenCount(used),
		formatTokenCount(b.ModelContextWindow),
		b.UtilisationPct())

	if b.IsTruncated {
		summary += " • transcript " + b.StrategyUsed
	}
	return summary
}

// formatTokenCount abbreviates a token count for display:
// millions with one decimal ("1.0M"), thousands without ("45K"),
// smaller values as plain integers.
func formatTokenCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.0fK", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}
