// Package window budgets LLM context windows for chat and one-shot calls.
//
// The Manager sequences the other contextkit packages into a final
// allocation: it looks up the model's limits, reserves room for the
// response, charges the system prompt, trims the conversation history,
// and fits the transcript into whatever remains.
//
//	mgr := window.NewManager(nil, window.DefaultSettings())
//	prepared := mgr.PrepareChatContext(window.ChatRequest{
//	    Model:        "gpt-4o",
//	    Provider:     "openai",
//	    SystemPrompt: "You are a helpful assistant.",
//	    Transcript:   transcriptText,
//	    History:      turns,
//	})
//
// prepared.FittedTranscript and prepared.TrimmedHistory are ready to
// send; prepared.Budget records where every token went.
//
// # Failure Model
//
// A budgeting pass always produces a usable, inspectable result. The
// entry points return no error: impossible configurations clamp derived
// budgets to zero, catalog misses fall back to heuristics, tokenizer
// failures fall back to estimation, and a window too small for any input
// yields a degraded PreparedContext with IsTruncated set when input was
// dropped. Warning the user about aggressive truncation is the calling
// application's job; FormatBudgetSummary helps with the display.
package window
