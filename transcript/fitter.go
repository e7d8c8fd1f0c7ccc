package transcript

import (
	"fmt"
	"strconv"

	"github.com/transcribekit/contextkit/tokens"
)

// Strategy names accepted by Fit. Unknown names behave as StrategyTruncate.
const (
	// StrategyNone is reported when no fitting was needed.
	StrategyNone = "none"

	// StrategyTruncate keeps the first N tokens (head truncation).
	StrategyTruncate = "truncate"

	// StrategyTail keeps the last N tokens.
	StrategyTail = "tail"

	// StrategyHeadTail keeps the beginning and end, eliding the middle
	// with a marker so the model sees both the start and the finish.
	StrategyHeadTail = "head_tail"

	// StrategySmart chooses between truncate and head_tail based on how
	// far the text overflows the budget.
	StrategySmart = "smart"
)

// MarkerReserveTokens is withheld from a head_tail budget to pay for the
// elision marker itself.
const MarkerReserveTokens = 30

// DefaultHeadTailRatio is the fraction of a head_tail budget given to
// the head portion.
const DefaultHeadTailRatio = 0.6

// Overflow bands for the smart strategy, as a ratio of actual tokens to
// budget tokens.
const (
	smartTruncateMaxRatio = 1.3
	smartModerateMaxRatio = 3.0
)

// Fitter fits transcript text into token budgets.
type Fitter struct {
	counter       tokens.Counter
	charsPerToken float64
}

// NewFitter creates a fitter using the given counter for token counts and
// the ratio for token-to-character conversion. A nil counter or
// non-positive ratio falls back to the estimating defaults.
func NewFitter(counter tokens.Counter, charsPerToken float64) *Fitter {
	if charsPerToken <= 0 {
		charsPerToken = tokens.DefaultCharsPerToken
	}
	if counter == nil {
		counter = tokens.NewEstimatingCounterWithRatio(charsPerToken)
	}
	return &Fitter{
		counter:       counter,
		charsPerToken: charsPerToken,
	}
}

// Fit fits text into budgetTokens using the requested strategy.
//
// Returns the fitted text, the strategy actually applied, and the token
// count of the fitted text. Text that already fits is returned unchanged
// with StrategyNone. Empty text yields ("", StrategyNone, 0); non-empty
// text against a non-positive budget yields ("", strategy, 0), keeping
// the caller's requested strategy label. Fit never fails.
func (f *Fitter) Fit(text string, budgetTokens int, strategy string, headTailRatio float64) (string, string, int) {
	if text == "" {
		return "", StrategyNone, 0
	}
	if budgetTokens <= 0 {
		return "", strategy, 0
	}

	actual := f.counter.Count(text)
	if actual <= budgetTokens {
		return text, StrategyNone, actual
	}

	effective := strategy
	if strategy == StrategySmart {
		ratio := float64(actual) / float64(budgetTokens)
		switch {
		case ratio <= smartTruncateMaxRatio:
			// Only slightly over, just trim the end.
			effective = StrategyTruncate
		case ratio <= smartModerateMaxRatio:
			// Moderate overflow, head + tail preserves key info.
			effective = StrategyHeadTail
		default:
			// Severe overflow, head + tail is still the best option.
			effective = StrategyHeadTail
		}
	}

	maxChars := tokens.CharsForTokens(budgetTokens, f.charsPerToken)

	switch effective {
	case StrategyTail:
		fitted := tailRunes(text, maxChars)
		return fitted, StrategyTail, f.counter.Count(fitted)

	case StrategyHeadTail:
		return f.fitHeadTail(text, budgetTokens, actual, maxChars, headTailRatio)

	default:
		// StrategyTruncate and anything unrecognized.
		fitted := headRunes(text, maxChars)
		return fitted, StrategyTruncate, f.counter.Count(fitted)
	}
}

// fitHeadTail keeps the head and tail of the text, inserting an elision
// marker between them. When the marker reserve leaves no usable budget,
// it degrades to a plain full-width truncate rather than attempting a
// minimal head/tail split.
func (f *Fitter) fitHeadTail(text string, budgetTokens, actualTokens, maxChars int, headTailRatio float64) (string, string, int) {
	usable := budgetTokens - MarkerReserveTokens
	if usable <= 0 {
		return headRunes(text, maxChars), StrategyTruncate, budgetTokens
	}

	if headTailRatio <= 0 || headTailRatio >= 1 {
		headTailRatio = DefaultHeadTailRatio
	}

	headTokens := int(float64(usable) * headTailRatio)
	tailTokens := usable - headTokens

	headText := headRunes(text, tokens.CharsForTokens(headTokens, f.charsPerToken))
	tailText := ""
	if tailTokens > 0 {
		tailText = tailRunes(text, tokens.CharsForTokens(tailTokens, f.charsPerToken))
	}

	omitted := actualTokens - headTokens - tailTokens
	if omitted < 0 {
		omitted = 0
	}

	fitted := headText + elisionMarker(omitted) + tailText
	return fitted, StrategyHeadTail, f.counter.Count(fitted)
}

// elisionMarker renders the marker inserted in place of elided middle
// content. It always contains the word "omitted" and the elided count.
func elisionMarker(omittedTokens int) string {
	return fmt.Sprintf(
		"\n\n[... middle of transcript omitted due to length, %s tokens elided ...]\n\n",
		groupThousands(omittedTokens),
	)
}

// groupThousands formats n with comma separators, e.g. 1234567 -> "1,234,567".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 || len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// headRunes returns the first n runes of text. Out-of-range counts clamp,
// matching slice semantics on character positions.
func headRunes(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if n >= len(runes) {
		return text
	}
	return string(runes[:n])
}

// tailRunes returns the last n runes of text.
func tailRunes(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if n >= len(runes) {
		return text
	}
	return string(runes[len(runes)-n:])
}

// Fit is a convenience function that fits text using a counter resolved
// for the model/provider pair.
func Fit(text string, budgetTokens int, strategy string, headTailRatio, charsPerToken float64, model, provider string) (string, string, int) {
	counter := tokens.ForModel(model, provider, charsPerToken)
	return NewFitter(counter, charsPerToken).Fit(text, budgetTokens, strategy, headTailRatio)
}
