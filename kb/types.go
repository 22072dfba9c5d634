// Package kb defines the knowledge-base data model and the read-side
// structures the query resolver consults: the condition store contract, the
// alias index and the condition-list cache.
package kb

// Lang codes used throughout the knowledge base.
const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// Bilingual holds the English and Hindi renderings of one text field.
// Both sides present or both empty; a missing translation is an empty string,
// never an absent key.
type Bilingual struct {
	EN string `json:"en"`
	HI string `json:"hi"`
}

// Get returns the rendering for lang, defaulting to English.
func (b Bilingual) Get(lang string) string {
	if lang == LangHindi {
		return b.HI
	}
	return b.EN
}

// IsEmpty reports whether neither language has text.
func (b Bilingual) IsEmpty() bool {
	return b.EN == "" && b.HI == ""
}

// Condition is a canonical knowledge-base entry. CanonicalID is the stable
// English display name and the join key across aliases and content fields.
// Conditions are immutable during query resolution; writes go through the
// administrative path only.
type Condition struct {
	CanonicalID    string
	DisplayName    Bilingual
	Description    Bilingual
	Symptoms       Bilingual
	FirstAid       Bilingual
	Prevention     Bilingual
	Disclaimer     Bilingual
	IntentCategory string
}
