package resolver

import (
	"strings"

	"wellness-bot/kb"
	"wellness-bot/textutil"
)

// NormalizedQuery is the ephemeral, per-request value handed to the matching
// tiers. It is never persisted; the logging layer records only the raw text.
type NormalizedQuery struct {
	Raw      string
	Language string // kb.LangEnglish or kb.LangHindi
	Text     string
	Tokens   []string
}

// IsEmpty reports whether the query normalized to nothing; the caller
// short-circuits to the fixed enter-a-query prompt without consulting the
// index or the store.
func (q NormalizedQuery) IsEmpty() bool {
	return q.Text == ""
}

// Normalize case-folds, strips punctuation, NFKC-normalizes and applies the
// cross-language keyword and synonym rule tables to raw input. Language is
// detected on the raw text: any Devanagari code point marks the query Hindi.
// Normalize is a fixed point over its own output.
func Normalize(raw string) NormalizedQuery {
	lang := kb.LangEnglish
	if textutil.HasDevanagari(raw) {
		lang = kb.LangHindi
	}

	text := textutil.Fold(raw)
	text = applyRules(text, hindiKeywordRules)
	text = applyRules(text, synonymRules)

	return NormalizedQuery{
		Raw:      raw,
		Language: lang,
		Text:     text,
		Tokens:   textutil.Tokens(text),
	}
}

// applyRules runs one ordered substitution pass. Table order is load-bearing;
// see the rule tables.
func applyRules(text string, rules []rule) string {
	for _, r := range rules {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	return text
}

// splitSegments breaks a normalized query on connective tokens so each topic
// of a multi-topic query resolves independently.
func splitSegments(text string) []string {
	segments := []string{text}
	for _, splitter := range segmentSplitters {
		var next []string
		for _, segment := range segments {
			for _, part := range strings.Split(segment, splitter) {
				part = strings.TrimSpace(part)
				if part != "" {
					next = append(next, part)
				}
			}
		}
		segments = next
	}
	return segments
}
