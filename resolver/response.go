package resolver

import "wellness-bot/kb"

// Tier identifies which matching stage produced a match, for explainability
// and analytics.
type Tier string

const (
	TierOverride Tier = "override"
	TierAlias    Tier = "alias"
	TierFuzzy    Tier = "fuzzy"
)

// Match records one resolved canonical id and why it matched. Score is only
// meaningful for the fuzzy tier; exact tiers report 1.0. IntentCategory is
// filled in during aggregation, once the condition has been fetched.
type Match struct {
	CanonicalID    string
	Tier           Tier
	Score          float64
	IntentCategory string
}

// Answer is the aggregated knowledge-base payload for a successful
// resolution. Text fields concatenate all matched conditions' content in
// match order, per language; Disclaimer is last-non-empty-wins.
type Answer struct {
	Conditions  []kb.Bilingual `json:"conditions"`
	Description kb.Bilingual   `json:"description"`
	Symptoms    kb.Bilingual   `json:"possible_symptom"`
	FirstAid    kb.Bilingual   `json:"first_aid_tips"`
	Prevention  kb.Bilingual   `json:"prevention_tips"`
	Disclaimer  kb.Bilingual   `json:"disclaimer"`
}

// Response is the discriminated result of resolving one query: either a
// knowledge-base answer or a fallback. The pipeline never returns an empty
// result; the terminal fallback message is always populated on the fallback
// path.
type Response struct {
	Fallback    bool          `json:"fallback"`
	Message     *kb.Bilingual `json:"message,omitempty"`
	Suggestions []string      `json:"suggestions,omitempty"`
	*Answer

	// Language is the detected language of the query, informational for the
	// client. It is not a second translation.
	Language string `json:"language"`

	// Conversational marks canned replies (greetings, empty-input prompt)
	// that callers should not log as knowledge-base traffic.
	Conversational bool `json:"-"`

	// Matches explains the resolution for logging; not serialized to clients.
	Matches []Match `json:"-"`
}

// MatchedIDs returns the canonical ids behind this response, in match order.
// Empty for fallback responses.
func (r *Response) MatchedIDs() []string {
	if len(r.Matches) == 0 {
		return nil
	}
	ids := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		ids[i] = m.CanonicalID
	}
	return ids
}
