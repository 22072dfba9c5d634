package kb

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

var acronymPattern = regexp.MustCompile(`\((.*?)\)`)

// englishStopwords never become standalone aliases; a token like "and" from
// "Cuts and Bleeding" would substring-match nearly any sentence.
var englishStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "for": {}, "in": {},
	"of": {}, "on": {}, "or": {}, "the": {}, "to": {},
}

// GenerateAliases derives the surface forms for one condition display name:
// the full trimmed string, any parenthesized acronym, and per-language word
// tokens. English names are tokenized on punctuation and whitespace; Hindi
// names split on whitespace only, because splitting Devanagari compounds on
// punctuation fragments valid terms. The display name itself is always the
// first invariant alias.
func GenerateAliases(displayName, lang string) []string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil
	}

	seen := map[string]struct{}{name: {}}
	aliases := []string{name}
	add := func(alias string) {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			return
		}
		if _, ok := seen[alias]; ok {
			return
		}
		seen[alias] = struct{}{}
		aliases = append(aliases, alias)
	}

	if match := acronymPattern.FindStringSubmatch(name); match != nil {
		add(match[1])
	}

	switch lang {
	case LangHindi:
		clean := strings.NewReplacer("(", "", ")", "").Replace(name)
		for _, token := range strings.Fields(clean) {
			add(token)
		}
	default:
		for _, token := range englishTokens(name) {
			if _, stop := englishStopwords[token]; stop {
				continue
			}
			add(token)
		}
	}

	// Deterministic ordering past the leading display name.
	sort.Strings(aliases[1:])
	return aliases
}

// englishTokens lowercases and word-tokenizes an English display name.
func englishTokens(name string) []string {
	doc, err := prose.NewDocument(strings.ToLower(name),
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		// Tokenizer failure falls back to a plain punctuation split.
		return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
	}

	var tokens []string
	for _, tok := range doc.Tokens() {
		if !containsAlnum(tok.Text) {
			continue
		}
		tokens = append(tokens, tok.Text)
	}
	return tokens
}

func containsAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
