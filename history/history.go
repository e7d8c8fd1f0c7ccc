// Package history manages ordered conversation histories for LLM calls.
//
// A Turn is a single user, assistant, or system message. Trim reduces a
// history to turn-count and token limits, always dropping the oldest
// turns first and always preserving the most recent exchange.
package history

import (
	"github.com/transcribekit/contextkit/tokens"
)

// Role values for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// minTurns is the floor for token-budget trimming: the most recent
// exchange is always preserved, even when it exceeds the budget. The
// residual overflow surfaces through the caller's budget accounting.
const minTurns = 2

// Turn is one message in a conversation history. Order is chronological;
// turns need not be unique.
type Turn struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// TotalTokens sums the counted tokens of all turn contents.
func TotalTokens(turns []Turn, counter tokens.Counter) int {
	total := 0
	for _, turn := range turns {
		total += counter.Count(turn.Content)
	}
	return total
}

// Trim returns a trimmed copy of turns.
//
// When maxTurns > 0, only the most recent maxTurns entries are kept.
// When maxTokens > 0, the oldest remaining turns are dropped while the
// history exceeds the budget, but never below two entries. Zero for
// either limit means unlimited on that axis. Order is preserved; no
// deduplication happens.
func Trim(turns []Turn, maxTurns, maxTokens int, counter tokens.Counter) []Turn {
	if len(turns) == 0 {
		return nil
	}
	if counter == nil {
		counter = tokens.NewEstimatingCounter()
	}

	result := append([]Turn(nil), turns...)

	if maxTurns > 0 && len(result) > maxTurns {
		result = result[len(result)-maxTurns:]
	}

	if maxTokens > 0 {
		for len(result) > minTurns && TotalTokens(result, counter) > maxTokens {
			result = result[1:]
		}
	}

	return result
}
