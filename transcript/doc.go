// Package transcript fits transcript text into token budgets.
//
// Long transcripts rarely fit into a model's context window alongside a
// system prompt and chat history. This package reduces a transcript to a
// token budget with a choice of strategies:
//
//   - truncate: keep the first N tokens
//   - tail: keep the last N tokens
//   - head_tail: keep the beginning and end, elide the middle with a
//     marker stating how many tokens were omitted
//   - smart: pick truncate for small overflows and head_tail for larger
//     ones
//
// # Usage
//
//	fitter := transcript.NewFitter(counter, 4.0)
//	fitted, used, count := fitter.Fit(text, 5000, transcript.StrategySmart, 0.6)
//
// Text that already fits is returned unchanged with used == "none". The
// fitted token count is always re-counted from the resulting string, not
// derived from budget arithmetic. Fit never fails; impossible budgets
// produce empty output rather than errors.
//
// All character arithmetic is rune-based, so multi-byte text is never
// split mid-character.
package transcript
