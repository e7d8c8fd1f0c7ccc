// Package contextkit provides context-window budgeting for LLM requests.
//
// contextkit fits a variable-length transcript, a conversation history, and
// a system prompt into a model's context window while always reserving room
// for the response. Each subpackage can be used independently:
//
//   - tokens: Heuristic and precise (tiktoken) token counting
//   - catalog: Model context-window and output-limit lookup with fallbacks
//   - transcript: Token-budget transcript fitting strategies
//   - history: Conversation history trimming
//   - window: The budgeting orchestrator and budget summaries
//   - config: Settings loading from files and the environment
//
// # Quick Start
//
// Prepare a chat context:
//
//	import "github.com/transcribekit/contextkit/window"
//	mgr := window.NewManager(nil, window.DefaultSettings())
//	prepared := mgr.PrepareChatContext(window.ChatRequest{
//	    Model:        "gpt-4o",
//	    Provider:     "openai",
//	    SystemPrompt: "You are a helpful assistant.",
//	    Transcript:   transcriptText,
//	    History:      turns,
//	})
//	// prepared.FittedTranscript and prepared.TrimmedHistory are ready to send.
//
// Token counting:
//
//	import "github.com/transcribekit/contextkit/tokens"
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, World!")
//
// # Design Philosophy
//
// contextkit follows these principles:
//
//   - A budgeting pass always produces a usable result: degradation is
//     expressed through returned data (flags, counts, strategy labels),
//     never through errors or panics
//   - Catalog misses and tokenizer failures degrade to heuristic estimates
//   - No I/O and no shared mutable state in the budgeting path, so
//     concurrent use needs no locking
//   - Interfaces for extensibility, concrete types for simplicity
package contextkit
