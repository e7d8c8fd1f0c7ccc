package window

import (
	"log/slog"

	"github.com/transcribekit/contextkit/catalog"
	"github.com/transcribekit/contextkit/history"
	"github.com/transcribekit/contextkit/tokens"
	"github.com/transcribekit/contextkit/transcript"
)

// MinResponseReserve is the minimum tokens reserved for the model's
// response, so it can always produce a meaningful answer.
const MinResponseReserve = 512

// TranscriptFraming is the fixed scaffolding placed around the transcript
// in one-shot action prompts. Its token cost is charged to the fixed
// budget alongside the instructions.
const TranscriptFraming = "\n\n--- TRANSCRIPT ---\n\n--- END TRANSCRIPT ---\n\n" +
	"Please process this transcript according to the instructions above."

// AttachmentHeader and AttachmentFooter frame attached document text in
// one-shot action prompts.
const (
	AttachmentHeader = "\n\n--- ATTACHED DOCUMENTS ---\n"
	AttachmentFooter = "\n--- END ATTACHED DOCUMENTS ---\n"
)

// ChatRequest describes a chat completion to budget for.
type ChatRequest struct {
	// Model and Provider select the target model.
	Model    string
	Provider string

	// SystemPrompt is the system message for the conversation.
	SystemPrompt string

	// Transcript is the full transcript text to fit.
	Transcript string

	// History is the prior conversation, oldest first.
	History []history.Turn

	// ResponseReserve overrides the settings' response reserve when > 0.
	ResponseReserve int
}

// ActionRequest describes a one-shot AI action (no conversation history).
type ActionRequest struct {
	Model    string
	Provider string

	// Instructions is the action prompt.
	Instructions string

	// Transcript is the full transcript text to fit.
	Transcript string

	// AttachmentsText is pre-formatted text from attached documents.
	AttachmentsText string

	// ResponseReserve overrides the settings' response reserve when > 0.
	ResponseReserve int
}

// Manager orchestrates context-window budgeting for AI calls.
//
// A Manager is a pure function of its immutable settings and the injected
// catalog: identical inputs always yield identical outputs, and concurrent
// use needs no locking.
type Manager struct {
	settings Settings
	catalog  catalog.Catalog
}

// NewManager creates a manager with the given catalog and settings.
// A nil catalog selects the built-in model catalog.
func NewManager(cat catalog.Catalog, settings Settings) *Manager {
	if cat == nil {
		cat = catalog.Builtin()
	}
	return &Manager{
		settings: settings,
		catalog:  cat,
	}
}

// Settings returns the manager's settings.
func (m *Manager) Settings() Settings {
	return m.settings
}

// charsPerToken returns the configured ratio, defaulting when unset.
func (m *Manager) charsPerToken() float64 {
	if m.settings.CharsPerToken > 0 {
		return m.settings.CharsPerToken
	}
	return tokens.DefaultCharsPerToken
}

// responseReserve resolves the reserve for a call: the override (when
// positive) or the configured reserve, floored at MinResponseReserve and
// capped at what the model can actually output.
func (m *Manager) responseReserve(override, maxOutput int) int {
	reserve := override
	if reserve <= 0 {
		reserve = m.settings.ResponseReserveTokens
	}
	if reserve < MinResponseReserve {
		reserve = MinResponseReserve
	}
	if reserve > maxOutput {
		reserve = maxOutput
	}
	return reserve
}

// PrepareChatContext fits the system prompt, conversation history, and
// transcript into the model's context window.
//
// The transcript receives TranscriptBudgetPct of whatever remains after
// the response reserve, system prompt, and trimmed history; when the
// history is empty it receives the entire remaining pool. The pass never
// fails: an impossible window yields a degraded result with empty
// transcript and history.
func (m *Manager) PrepareChatContext(req ChatRequest) PreparedContext {
	cpt := m.charsPerToken()
	counter := tokens.ForModel(req.Model, req.Provider, cpt)

	contextWindow := catalog.ContextWindow(m.catalog, req.Model, req.Provider)
	maxOutput := catalog.MaxOutputTokens(m.catalog, req.Model, req.Provider)

	reserve := m.responseReserve(req.ResponseReserve, maxOutput)

	available := contextWindow - reserve
	if available <= 0 {
		slog.Warn("context window leaves no room after response reserve",
			slog.Int("window", contextWindow),
			slog.Int("reserve", reserve))
		return PreparedContext{
			Budget: Budget{
				ModelContextWindow:     contextWindow,
				ResponseReserveTokens:  reserve,
				TranscriptActualTokens: tokens.NewEstimatingCounterWithRatio(cpt).Count(req.Transcript),
				StrategyUsed:           transcript.StrategyNone,
				IsTruncated:            req.Transcript != "",
			},
		}
	}

	sysTokens := counter.Count(req.SystemPrompt)
	// May go negative; derived budgets clamp to >= 0 below while this
	// running total stays honest for diagnostics.
	available -= sysTokens

	hist := append([]history.Turn(nil), req.History...)
	if m.settings.MaxConversationTurns > 0 {
		hist = history.Trim(hist, m.settings.MaxConversationTurns, 0, counter)
	}
	historyTokens := history.TotalTokens(hist, counter)

	// If history alone would crowd out the transcript, trim it by token
	// budget as well.
	maxHistoryTokens := int(float64(available) * (1.0 - m.settings.TranscriptBudgetPct))
	if historyTokens > maxHistoryTokens && maxHistoryTokens > 0 {
		hist = history.Trim(hist, 0, maxHistoryTokens, counter)
		historyTokens = history.TotalTokens(hist, counter)
	}

	available -= historyTokens

	transcriptBudget := int(float64(available) * m.settings.TranscriptBudgetPct)
	if len(hist) == 0 {
		// Nothing competes for the pool, give it all to the transcript.
		transcriptBudget = available
	}
	if transcriptBudget < 0 {
		transcriptBudget = 0
	}

	actualTokens := counter.Count(req.Transcript)

	fitter := transcript.NewFitter(counter, cpt)
	fitted, strategyUsed, fittedTokens := fitter.Fit(
		req.Transcript, transcriptBudget, m.settings.Strategy, m.settings.HeadTailRatio)

	budget := Budget{
		ModelContextWindow:        contextWindow,
		SystemPromptTokens:        sysTokens,
		ResponseReserveTokens:     reserve,
		ConversationHistoryTokens: historyTokens,
		TranscriptBudgetTokens:    transcriptBudget,
		TranscriptActualTokens:    actualTokens,
		TranscriptFittedTokens:    fittedTokens,
		StrategyUsed:              strategyUsed,
		IsTruncated:               strategyUsed != transcript.StrategyNone,
	}

	slog.Info("context budget",
		slog.Int("window", contextWindow),
		slog.Int("system_tokens", sysTokens),
		slog.Int("history_tokens", historyTokens),
		slog.Int("history_turns", len(hist)),
		slog.Int("transcript_fitted", fittedTokens),
		slog.Int("transcript_actual", actualTokens),
		slog.Int("transcript_budget", transcriptBudget),
		slog.String("strategy", strategyUsed),
		slog.Int("reserve", reserve),
		slog.Float64("utilisation_pct", budget.UtilisationPct()))

	return PreparedContext{
		FittedTranscript: fitted,
		TrimmedHistory:   hist,
		Budget:           budget,
	}
}

// PrepareActionContext budgets a one-shot AI action. With no history
// competing for space, the transcript receives everything left after the
// response reserve, the instructions, and the prompt framing.
func (m *Manager) PrepareActionContext(req ActionRequest) PreparedContext {
	cpt := m.charsPerToken()
	counter := tokens.ForModel(req.Model, req.Provider, cpt)

	contextWindow := catalog.ContextWindow(m.catalog, req.Model, req.Provider)
	maxOutput := catalog.MaxOutputTokens(m.catalog, req.Model, req.Provider)

	reserve := m.responseReserve(req.ResponseReserve, maxOutput)

	available := contextWindow - reserve
	if available <= 0 {
		slog.Warn("context window leaves no room after response reserve",
			slog.Int("window", contextWindow),
			slog.Int("reserve", reserve))
		return PreparedContext{
			Budget: Budget{
				ModelContextWindow:     contextWindow,
				ResponseReserveTokens:  reserve,
				TranscriptActualTokens: tokens.NewEstimatingCounterWithRatio(cpt).Count(req.Transcript),
				StrategyUsed:           transcript.StrategyNone,
				IsTruncated:            req.Transcript != "",
			},
		}
	}

	instructionTokens := counter.Count(req.Instructions + TranscriptFraming)
	attachmentTokens := 0
	if req.AttachmentsText != "" {
		attachmentTokens = counter.Count(AttachmentHeader + req.AttachmentsText + AttachmentFooter)
	}
	fixedTokens := instructionTokens + attachmentTokens

	transcriptBudget := contextWindow - reserve - fixedTokens
	if transcriptBudget < 0 {
		transcriptBudget = 0
	}

	actualTokens := counter.Count(req.Transcript)

	fitter := transcript.NewFitter(counter, cpt)
	fitted, strategyUsed, fittedTokens := fitter.Fit(
		req.Transcript, transcriptBudget, m.settings.Strategy, m.settings.HeadTailRatio)

	budget := Budget{
		ModelContextWindow:     contextWindow,
		SystemPromptTokens:     fixedTokens,
		ResponseReserveTokens:  reserve,
		TranscriptBudgetTokens: transcriptBudget,
		TranscriptActualTokens: actualTokens,
		TranscriptFittedTokens: fittedTokens,
		StrategyUsed:           strategyUsed,
		IsTruncated:            strategyUsed != transcript.StrategyNone,
	}

	slog.Info("action context budget",
		slog.Int("window", contextWindow),
		slog.Int("instruction_tokens", instructionTokens),
		slog.Int("attachment_tokens", attachmentTokens),
		slog.Int("transcript_fitted", fittedTokens),
		slog.Int("transcript_actual", actualTokens),
		slog.Int("transcript_budget", transcriptBudget),
		slog.String("strategy", strategyUsed),
		slog.Int("reserve", reserve),
		slog.Float64("utilisation_pct", budget.UtilisationPct()))

	return PreparedContext{
		FittedTranscript: fitted,
		Budget:           budget,
	}
}
