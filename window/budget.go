package window

import "github.com/transcribekit/contextkit/history"

// Budget is the token allocation computed for a single AI call.
// All values are in tokens, estimated or precise.
type Budget struct {
	// ModelContextWindow is the total context window of the model.
	ModelContextWindow int

	// SystemPromptTokens is consumed by the system prompt or, for
	// one-shot actions, the instructions plus prompt framing.
	SystemPromptTokens int

	// ResponseReserveTokens is withheld for the model's response.
	ResponseReserveTokens int

	// ConversationHistoryTokens is consumed by prior conversation turns
	// after trimming.
	ConversationHistoryTokens int

	// TranscriptBudgetTokens is the budget the transcript was fitted into.
	TranscriptBudgetTokens int

	// TranscriptActualTokens is the size of the full, unfitted transcript.
	TranscriptActualTokens int

	// TranscriptFittedTokens is the size of the transcript after fitting.
	TranscriptFittedTokens int

	// StrategyUsed is the fitting strategy actually applied
	// (none/truncate/tail/head_tail).
	StrategyUsed string

	// IsTruncated reports whether the transcript had to be reduced.
	IsTruncated bool
}

// TotalUsedTokens is the total input consumption:
// system prompt + history + fitted transcript.
func (b Budget) TotalUsedTokens() int {
	return b.SystemPromptTokens + b.ConversationHistoryTokens + b.TranscriptFittedTokens
}

// UtilisationPct is the percentage of the effective window used, in
// [0, 100]. It is 0 when the window is unknown (zero) and pins at 100
// when the reserve leaves no effective window or usage exceeds it.
func (b Budget) UtilisationPct() float64 {
	if b.ModelContextWindow <= 0 {
		return 0.0
	}
	effective := b.ModelContextWindow - b.ResponseReserveTokens
	if effective <= 0 {
		return 100.0
	}
	pct := float64(b.TotalUsedTokens()) / float64(effective) * 100.0
	if pct > 100.0 {
		return 100.0
	}
	if pct < 0 {
		return 0.0
	}
	return pct
}

// HeadroomTokens is the free space remaining after all allocations.
// Never negative.
func (b Budget) HeadroomTokens() int {
	headroom := b.ModelContextWindow - b.ResponseReserveTokens - b.TotalUsedTokens()
	if headroom < 0 {
		return 0
	}
	return headroom
}

// PreparedContext is the result of a budgeting pass, ready to hand to a
// transport layer. It is created fresh per call and never mutated.
type PreparedContext struct {
	// FittedTranscript is the transcript text fitted to the budget.
	FittedTranscript string

	// TrimmedHistory is the conversation history after trimming,
	// chronological order preserved.
	TrimmedHistory []history.Turn

	// Budget is the detailed allocation breakdown.
	Budget Budget
}
