package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/transcribekit/contextkit/tokens"
	"github.com/transcribekit/contextkit/transcript"
	"github.com/transcribekit/contextkit/window"
)

// Config holds persisted context-window settings plus model selection.
// Zero values mean "use the default" for every field except Strategy,
// where an empty string also selects the default.
type Config struct {
	// Provider is the AI provider identifier, e.g. "openai", "anthropic".
	Provider string `json:"provider" yaml:"provider" toml:"provider"`

	// Model is the provider-specific model identifier, e.g. "gpt-4o".
	Model string `json:"model" yaml:"model" toml:"model"`

	// Strategy is the transcript fitting strategy:
	// "truncate", "tail", "head_tail", or "smart".
	Strategy string `json:"strategy" yaml:"strategy" toml:"strategy"`

	// TranscriptBudgetPct is the fraction of available context given to
	// the transcript, in [0, 1].
	TranscriptBudgetPct float64 `json:"transcript_budget_pct" yaml:"transcript_budget_pct" toml:"transcript_budget_pct"`

	// ResponseReserveTokens is withheld for the model's response.
	ResponseReserveTokens int `json:"response_reserve_tokens" yaml:"response_reserve_tokens" toml:"response_reserve_tokens"`

	// MaxConversationTurns limits history length (0 = unlimited).
	MaxConversationTurns int `json:"max_conversation_turns" yaml:"max_conversation_turns" toml:"max_conversation_turns"`

	// HeadTailRatio is the head share of a head_tail budget, in (0, 1).
	HeadTailRatio float64 `json:"head_tail_ratio" yaml:"head_tail_ratio" toml:"head_tail_ratio"`

	// CharsPerToken is the heuristic estimation ratio.
	CharsPerToken float64 `json:"chars_per_token" yaml:"chars_per_token" toml:"chars_per_token"`
}

// Default returns a Config carrying the documented defaults.
func Default() Config {
	return Config{
		Strategy:              window.DefaultStrategy,
		TranscriptBudgetPct:   window.DefaultTranscriptBudgetPct,
		ResponseReserveTokens: window.DefaultResponseReserveTokens,
		MaxConversationTurns:  window.DefaultMaxConversationTurns,
		HeadTailRatio:         window.DefaultHeadTailRatio,
		CharsPerToken:         tokens.DefaultCharsPerToken,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Variables use the CONTEXTKIT_ prefix and take precedence over
// existing values.
//
// Supported variables:
//   - CONTEXTKIT_PROVIDER: Provider name
//   - CONTEXTKIT_MODEL: Model name
//   - CONTEXTKIT_STRATEGY: Fitting strategy
//   - CONTEXTKIT_TRANSCRIPT_BUDGET_PCT: Transcript budget fraction
//   - CONTEXTKIT_RESPONSE_RESERVE_TOKENS: Response reserve
//   - CONTEXTKIT_MAX_CONVERSATION_TURNS: History turn limit
//   - CONTEXTKIT_HEAD_TAIL_RATIO: Head share for head_tail
//   - CONTEXTKIT_CHARS_PER_TOKEN: Estimation ratio
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("CONTEXTKIT_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("CONTEXTKIT_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("CONTEXTKIT_STRATEGY"); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv("CONTEXTKIT_TRANSCRIPT_BUDGET_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.TranscriptBudgetPct = f
		}
	}
	if v := os.Getenv("CONTEXTKIT_RESPONSE_RESERVE_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ResponseReserveTokens = n
		}
	}
	if v := os.Getenv("CONTEXTKIT_MAX_CONVERSATION_TURNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxConversationTurns = n
		}
	}
	if v := os.Getenv("CONTEXTKIT_HEAD_TAIL_RATIO"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.HeadTailRatio = f
		}
	}
	if v := os.Getenv("CONTEXTKIT_CHARS_PER_TOKEN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.CharsPerToken = f
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := Default()
	cfg.LoadFromEnv()
	return cfg
}

// validStrategies lists accepted fitting strategy names.
var validStrategies = map[string]bool{
	transcript.StrategyTruncate: true,
	transcript.StrategyTail:     true,
	transcript.StrategyHeadTail: true,
	transcript.StrategySmart:    true,
}

// Validate checks if the configuration is valid. The budgeting engine
// itself tolerates out-of-range values by clamping; Validate exists so
// applications can reject bad input at the edge instead.
func (c Config) Validate() error {
	if c.Strategy != "" && !validStrategies[c.Strategy] {
		return fmt.Errorf("strategy must be one of truncate/tail/head_tail/smart, got %q", c.Strategy)
	}
	if c.TranscriptBudgetPct < 0 || c.TranscriptBudgetPct > 1 {
		return fmt.Errorf("transcript_budget_pct must be in [0, 1], got %v", c.TranscriptBudgetPct)
	}
	if c.ResponseReserveTokens < 0 {
		return fmt.Errorf("response_reserve_tokens must be >= 0, got %d", c.ResponseReserveTokens)
	}
	if c.MaxConversationTurns < 0 {
		return fmt.Errorf("max_conversation_turns must be >= 0, got %d", c.MaxConversationTurns)
	}
	if c.HeadTailRatio < 0 || c.HeadTailRatio >= 1 {
		return fmt.Errorf("head_tail_ratio must be in [0, 1), got %v", c.HeadTailRatio)
	}
	if c.CharsPerToken < 0 {
		return fmt.Errorf("chars_per_token must be >= 0, got %v", c.CharsPerToken)
	}
	return nil
}

// Settings converts the config to window.Settings, filling unset fields
// with the documented defaults.
func (c Config) Settings() window.Settings {
	s := window.DefaultSettings()
	if c.Strategy != "" {
		s.Strategy = c.Strategy
	}
	if c.TranscriptBudgetPct > 0 {
		s.TranscriptBudgetPct = c.TranscriptBudgetPct
	}
	if c.ResponseReserveTokens > 0 {
		s.ResponseReserveTokens = c.ResponseReserveTokens
	}
	if c.MaxConversationTurns > 0 {
		s.MaxConversationTurns = c.MaxConversationTurns
	}
	if c.HeadTailRatio > 0 {
		s.HeadTailRatio = c.HeadTailRatio
	}
	if c.CharsPerToken > 0 {
		s.CharsPerToken = c.CharsPerToken
	}
	return s
}

// WithModel returns a copy of the config with the specified model.
func (c Config) WithModel(model string) Config {
	c.Model = model
	return c
}

// WithProvider returns a copy of the config with the specified provider.
func (c Config) WithProvider(provider string) Config {
	c.Provider = provider
	return c
}
