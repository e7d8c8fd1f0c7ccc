package window

import (
	"github.com/transcribekit/contextkit/tokens"
	"github.com/transcribekit/contextkit/transcript"
)

// Default settings values.
const (
	DefaultStrategy              = transcript.StrategySmart
	DefaultTranscriptBudgetPct   = 0.70
	DefaultResponseReserveTokens = 4096
	DefaultMaxConversationTurns  = 20
	DefaultHeadTailRatio         = 0.6
)

// Settings holds the user-configurable knobs for context budgeting.
// The manager treats a Settings value as immutable; these defaults work
// well for most workflows.
type Settings struct {
	// Strategy is the transcript fitting strategy:
	// "truncate", "tail", "head_tail", or "smart".
	Strategy string

	// TranscriptBudgetPct is the fraction of available context allocated
	// to the transcript, in [0, 1].
	TranscriptBudgetPct float64

	// ResponseReserveTokens is withheld from input budgeting so the
	// model has room to generate its response.
	ResponseReserveTokens int

	// MaxConversationTurns limits history length (0 = unlimited).
	MaxConversationTurns int

	// HeadTailRatio is the fraction of a head_tail budget given to the
	// head portion, in (0, 1).
	HeadTailRatio float64

	// CharsPerToken is the characters-per-token ratio for heuristic
	// token estimation.
	CharsPerToken float64
}

// DefaultSettings returns the documented default settings:
// smart strategy, 70% transcript budget, 4096 reserved response tokens,
// 20 conversation turns, 0.6 head/tail ratio, 4.0 chars per token.
func DefaultSettings() Settings {
	return Settings{
		Strategy:              DefaultStrategy,
		TranscriptBudgetPct:   DefaultTranscriptBudgetPct,
		ResponseReserveTokens: DefaultResponseReserveTokens,
		MaxConversationTurns:  DefaultMaxConversationTurns,
		HeadTailRatio:         DefaultHeadTailRatio,
		CharsPerToken:         tokens.DefaultCharsPerToken,
	}
}
