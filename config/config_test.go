package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transcribekit/contextkit/window"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "smart", cfg.Strategy)
	assert.Equal(t, 0.70, cfg.TranscriptBudgetPct)
	assert.Equal(t, 4096, cfg.ResponseReserveTokens)
	assert.Equal(t, 20, cfg.MaxConversationTurns)
	assert.Equal(t, 0.6, cfg.HeadTailRatio)
	assert.Equal(t, 4.0, cfg.CharsPerToken)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "settings.yaml", `
provider: openai
model: gpt-4o
strategy: head_tail
transcript_budget_pct: 0.5
response_reserve_tokens: 2048
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "head_tail", cfg.Strategy)
	assert.Equal(t, 0.5, cfg.TranscriptBudgetPct)
	assert.Equal(t, 2048, cfg.ResponseReserveTokens)
	// Untouched fields keep their defaults.
	assert.Equal(t, 20, cfg.MaxConversationTurns)
	assert.Equal(t, 4.0, cfg.CharsPerToken)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "settings.toml", `
provider = "anthropic"
model = "claude-sonnet-4-20250514"
strategy = "tail"
max_conversation_turns = 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "tail", cfg.Strategy)
	assert.Equal(t, 8, cfg.MaxConversationTurns)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "settings.json", `{
  "provider": "gemini",
  "model": "gemini-2.0-flash",
  "chars_per_token": 3.5
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, 3.5, cfg.CharsPerToken)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "settings.ini", "provider=openai")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := writeFile(t, "settings.yaml", "strategy: reverse\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strategy")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONTEXTKIT_PROVIDER", "openai")
	t.Setenv("CONTEXTKIT_MODEL", "gpt-4o-mini")
	t.Setenv("CONTEXTKIT_STRATEGY", "truncate")
	t.Setenv("CONTEXTKIT_TRANSCRIPT_BUDGET_PCT", "0.8")
	t.Setenv("CONTEXTKIT_RESPONSE_RESERVE_TOKENS", "1024")
	t.Setenv("CONTEXTKIT_MAX_CONVERSATION_TURNS", "12")

	cfg := FromEnv()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "truncate", cfg.Strategy)
	assert.Equal(t, 0.8, cfg.TranscriptBudgetPct)
	assert.Equal(t, 1024, cfg.ResponseReserveTokens)
	assert.Equal(t, 12, cfg.MaxConversationTurns)
}

func TestLoadFromEnv_IgnoresUnparseable(t *testing.T) {
	t.Setenv("CONTEXTKIT_RESPONSE_RESERVE_TOKENS", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, 4096, cfg.ResponseReserveTokens)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "zero value is valid",
			mutate: func(c *Config) { *c = Config{} },
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *Config) { c.Strategy = "reverse" },
			wantErr: true,
		},
		{
			name:    "budget pct above one",
			mutate:  func(c *Config) { c.TranscriptBudgetPct = 1.5 },
			wantErr: true,
		},
		{
			name:    "negative reserve",
			mutate:  func(c *Config) { c.ResponseReserveTokens = -1 },
			wantErr: true,
		},
		{
			name:    "negative turns",
			mutate:  func(c *Config) { c.MaxConversationTurns = -1 },
			wantErr: true,
		},
		{
			name:    "head tail ratio of one",
			mutate:  func(c *Config) { c.HeadTailRatio = 1.0 },
			wantErr: true,
		},
		{
			name:    "negative chars per token",
			mutate:  func(c *Config) { c.CharsPerToken = -2 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettings_Conversion(t *testing.T) {
	cfg := Config{
		Strategy:              "tail",
		TranscriptBudgetPct:   0.5,
		ResponseReserveTokens: 1000,
	}

	s := cfg.Settings()
	assert.Equal(t, "tail", s.Strategy)
	assert.Equal(t, 0.5, s.TranscriptBudgetPct)
	assert.Equal(t, 1000, s.ResponseReserveTokens)
	// Unset fields fall back to defaults.
	assert.Equal(t, window.DefaultMaxConversationTurns, s.MaxConversationTurns)
	assert.Equal(t, window.DefaultHeadTailRatio, s.HeadTailRatio)
}

func TestSettings_ZeroConfigEqualsDefaults(t *testing.T) {
	assert.Equal(t, window.DefaultSettings(), Config{}.Settings())
}

func TestWith(t *testing.T) {
	base := Default()
	modified := base.WithProvider("anthropic").WithModel("claude-haiku-4-20250414")

	assert.Equal(t, "anthropic", modified.Provider)
	assert.Equal(t, "claude-haiku-4-20250414", modified.Model)
	// Copy semantics: the original is untouched.
	assert.Equal(t, "", base.Provider)
	assert.Equal(t, "", base.Model)
}

func TestSchema(t *testing.T) {
	schema := Schema()
	require.NotNil(t, schema)

	_, ok := schema.Properties.Get("transcript_budget_pct")
	assert.True(t, ok, "schema must describe the settings fields")
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	path := writeFile(t, "settings.yaml", "strategy: smart\n")

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-updates:
		assert.False(t, open, "channel must close after cancellation")
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel did not close after cancellation")
	}
}

func TestWatch_DeliversReload(t *testing.T) {
	path := writeFile(t, "settings.yaml", "strategy: smart\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("strategy: tail\n"), 0o644))

	select {
	case cfg := <-updates:
		assert.Equal(t, "tail", cfg.Strategy)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered after file change")
	}
}
