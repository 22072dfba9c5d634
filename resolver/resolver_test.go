package resolver

import (
	"context"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "wellness-bot/errors"
	"wellness-bot/kb"
)

type fakeStore struct {
	conds     []kb.Condition
	getCalls  int
	listCalls int
	failGet   bool
	failList  bool
}

func (s *fakeStore) GetCondition(ctx context.Context, canonicalID string) (kb.Condition, error) {
	s.getCalls++
	if s.failGet {
		return kb.Condition{}, apperrors.WrapError(apperrors.ErrStoreUnavailable, "fetching condition")
	}
	for _, cond := range s.conds {
		if cond.CanonicalID == canonicalID {
			return cond, nil
		}
	}
	return kb.Condition{}, apperrors.WrapErrorf(apperrors.ErrNotFound, "condition %q", canonicalID)
}

func (s *fakeStore) AllConditions(ctx context.Context) ([]kb.Condition, error) {
	s.listCalls++
	if s.failList {
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, "listing conditions")
	}
	return s.conds, nil
}

func (s *fakeStore) resetCounters() {
	s.getCalls = 0
	s.listCalls = 0
}

func testConditions() []kb.Condition {
	return []kb.Condition{
		{
			CanonicalID: "Fever",
			DisplayName: kb.Bilingual{EN: "Fever", HI: "बुखार"},
			Description: kb.Bilingual{EN: "A temporary rise in body temperature.", HI: "शरीर के तापमान में अस्थायी वृद्धि।"},
			Symptoms:    kb.Bilingual{EN: "Chills, sweating, weakness.", HI: "कंपकंपी, पसीना, कमज़ोरी।"},
			FirstAid:    kb.Bilingual{EN: "Rest and drink plenty of fluids.", HI: "आराम करें और खूब तरल पदार्थ लें।"},
			Prevention:  kb.Bilingual{EN: "Wash hands often.", HI: "हाथ बार-बार धोएं।"},
			Disclaimer:  kb.Bilingual{EN: "See a doctor if it persists.", HI: "बने रहने पर डॉक्टर से मिलें।"},
		},
		{
			CanonicalID: "Headache",
			DisplayName: kb.Bilingual{EN: "Headache", HI: "सिरदर्द"},
			Description: kb.Bilingual{EN: "Pain felt in the head or neck region.", HI: "सिर या गर्दन में महसूस होने वाला दर्द।"},
			Symptoms:    kb.Bilingual{EN: "Throbbing or pressure in the head.", HI: "सिर में धड़कन या दबाव।"},
			FirstAid:    kb.Bilingual{EN: "Rest in a quiet, dark room.", HI: "शांत, अंधेरे कमरे में आराम करें।"},
			Prevention:  kb.Bilingual{EN: "Stay hydrated and sleep well.", HI: "पर्याप्त पानी पिएं और अच्छी नींद लें।"},
			Disclaimer:  kb.Bilingual{EN: "See a doctor if it persists.", HI: "बने रहने पर डॉक्टर से मिलें।"},
		},
		{
			CanonicalID: "Cough",
			DisplayName: kb.Bilingual{EN: "Cough", HI: "खांसी"},
			Description: kb.Bilingual{EN: "A reflex that clears the airways.", HI: "वायुमार्ग साफ़ करने वाली प्रतिक्रिया।"},
			Disclaimer:  kb.Bilingual{EN: "See a doctor if it persists.", HI: "बने रहने पर डॉक्टर से मिलें।"},
		},
	}
}

func newTestService(t *testing.T, store *fakeStore) *Service {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	idx := kb.NewAliasIndex(logger)
	if err := idx.Reload(context.Background(), store, nil); err != nil {
		t.Fatalf("index Reload() error = %v", err)
	}
	cache := kb.NewConditionCache(store, time.Hour)
	return New(idx, store, cache, DefaultConfig(), logger)
}

func TestResolveExactConditionName(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	svc := newTestService(t, store)

	resp, err := svc.Resolve(context.Background(), "Fever")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp.Fallback {
		t.Fatalf("Resolve(Fever) fell back, want a knowledge-base answer")
	}
	if got, want := resp.MatchedIDs(), []string{"Fever"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchedIDs() = %v, want %v", got, want)
	}
	if resp.Matches[0].Tier != TierAlias {
		t.Errorf("Matches[0].Tier = %s, want %s", resp.Matches[0].Tier, TierAlias)
	}
	if resp.Description.EN != "A temporary rise in body temperature." {
		t.Errorf("Description.EN = %q, want the fever description", resp.Description.EN)
	}
	if resp.Language != kb.LangEnglish {
		t.Errorf("Language = %q, want %q", resp.Language, kb.LangEnglish)
	}
}

func TestResolveMultiTopicQuery(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	svc := newTestService(t, store)

	resp, err := svc.Resolve(context.Background(), "I have a headache and fever")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp.Fallback {
		t.Fatalf("Resolve() fell back, want an aggregated answer")
	}

	// Segment order, not store order: the headache segment comes first.
	if got, want := resp.MatchedIDs(), []string{"Headache", "Fever"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("MatchedIDs() = %v, want %v", got, want)
	}
	wantDesc := "Pain felt in the head or neck region.\nA temporary rise in body temperature."
	if resp.Description.EN != wantDesc {
		t.Errorf("Description.EN = %q, want %q", resp.Description.EN, wantDesc)
	}
	if len(resp.Conditions) != 2 {
		t.Errorf("len(Conditions) = %d, want 2", len(resp.Conditions))
	}
}

func TestResolveHindiQuery(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	svc := newTestService(t, store)

	resp, err := svc.Resolve(context.Background(), "मुझे सरदर्द है")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp.Fallback {
		t.Fatalf("Resolve(मुझे सरदर्द है) fell back, want the headache answer")
	}
	if got, want := resp.MatchedIDs(), []string{"Headache"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchedIDs() = %v, want %v", got, want)
	}
	if resp.Language != kb.LangHindi {
		t.Errorf("Language = %q, want %q", resp.Language, kb.LangHindi)
	}
	if resp.Description.HI == "" {
		t.Errorf("Description.HI empty, want Hindi content carried through")
	}
}

func TestResolveHindiDisplayNameAlias(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	svc := newTestService(t, store)

	// खांसी resolves twice over: the keyword table rewrites it to "cough" and
	// the Hindi alias side indexes the display name itself.
	resp, err := svc.Resolve(context.Background(), "खांसी")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got, want := resp.MatchedIDs(), []string{"Cough"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchedIDs() = %v, want %v", got, want)
	}
}

func TestResolveConversational(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	svc := newTestService(t, store)
	store.resetCounters()

	tests := []struct {
		name     string
		input    string
		language string
		wantEN   string
	}{
		{"greeting", "Hello!", kb.LangEnglish, "Hello! How can I support your wellness today?"},
		{"hindi_greeting", "नमस्ते", kb.LangHindi, "Hello! How can I support your wellness today?"},
		{"thanks", "thank you", kb.LangEnglish, "You're welcome! Let me know if you need anything else."},
		{"goodbye", "bye", kb.LangEnglish, "Take care! Wishing you wellness and peace."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Resolve(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !resp.Fallback || !resp.Conversational {
				t.Fatalf("Resolve(%q) = fallback=%v conversational=%v, want canned reply", tt.input, resp.Fallback, resp.Conversational)
			}
			if resp.Message == nil || resp.Message.EN != tt.wantEN {
				t.Errorf("Message = %v, want EN %q", resp.Message, tt.wantEN)
			}
			if resp.Language != tt.language {
				t.Errorf("Language = %q, want %q", resp.Language, tt.language)
			}
		})
	}

	if store.getCalls != 0 || store.listCalls != 0 {
		t.Errorf("conversational replies touched the store (%d gets, %d lists), want none", store.getCalls, store.listCalls)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	svc := newTestService(t, store)
	store.resetCounters()

	for _, input := range []string{"", "   ", "?!..."} {
		resp, err := svc.Resolve(context.Background(), input)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", input, err)
		}
		if !resp.Fallback || !resp.Conversational {
			t.Errorf("Resolve(%q) = fallback=%v conversational=%v, want the enter-a-query prompt", input, resp.Fallback, resp.Conversational)
		}
		if resp.Message == nil || resp.Message.EN != emptyQueryMessage.EN {
			t.Errorf("Resolve(%q).Message = %v, want the empty-query prompt", input, resp.Message)
		}
	}

	if store.getCalls != 0 || store.listCalls != 0 {
		t.Errorf("empty input touched the store (%d gets, %d lists), want none", store.getCalls, store.listCalls)
	}
}

func TestResolveOverridePhrase(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	svc := newTestService(t, store)

	resp, err := svc.Resolve(context.Background(), "Persistent Headache")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp.Fallback {
		t.Fatalf("Resolve(Persistent Headache) fell back, want the curated redirect")
	}
	if got, want := resp.MatchedIDs(), []string{"Headache"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchedIDs() = %v, want %v", got, want)
	}
	if resp.Matches[0].Tier != TierOverride {
		t.Errorf("Matches[0].Tier = %s, want %s", resp.Matches[0].Tier, TierOverride)
	}
}

func TestResolveDeduplicatesNearIdenticalConditions(t *testing.T) {
	store := &fakeStore{conds: []kb.Condition{
		{
			CanonicalID: "Fever",
			DisplayName: kb.Bilingual{EN: "Fever"},
			Description: kb.Bilingual{EN: "First."},
		},
		{
			CanonicalID: "Fevers",
			DisplayName: kb.Bilingual{EN: "Fevers"},
			Description: kb.Bilingual{EN: "Second."},
		},
	}}
	svc := newTestService(t, store)

	// "fevers" substring-matches both entries; near-identical canonical ids
	// collapse to the first.
	resp, err := svc.Resolve(context.Background(), "fevers")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got, want := resp.MatchedIDs(), []string{"Fever"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchedIDs() = %v, want %v", got, want)
	}
	if resp.Description.EN != "First." {
		t.Errorf("Description.EN = %q, want the surviving condition only", resp.Description.EN)
	}
}

func TestResolveFuzzyThreshold(t *testing.T) {
	store := &fakeStore{conds: []kb.Condition{
		{
			CanonicalID: "abcdefghij",
			DisplayName: kb.Bilingual{EN: "abcdefghij"},
			Description: kb.Bilingual{EN: "synthetic"},
		},
	}}
	svc := newTestService(t, store)

	// 0.70 similarity sits exactly at the threshold and must be accepted.
	resp, err := svc.Resolve(context.Background(), "abcdefgxyz")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp.Fallback {
		t.Fatalf("Resolve() fell back at exactly the fuzzy threshold, want a match")
	}
	if resp.Matches[0].Tier != TierFuzzy {
		t.Errorf("Matches[0].Tier = %s, want %s", resp.Matches[0].Tier, TierFuzzy)
	}

	// 0.60 misses the fuzzy threshold but clears the suggestion cutoff.
	resp, err = svc.Resolve(context.Background(), "abcdefxyzw")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !resp.Fallback {
		t.Fatalf("Resolve() matched below the fuzzy threshold, want fallback")
	}
	if got, want := resp.Suggestions, []string{"abcdefghij"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions = %v, want %v", got, want)
	}
	if resp.Message == nil || resp.Message.EN == "" {
		t.Errorf("fallback Message empty, want the not-found prompt")
	}

	// 0.50 clears neither; fallback with no suggestions.
	resp, err = svc.Resolve(context.Background(), "abcdexyzwv")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !resp.Fallback || len(resp.Suggestions) != 0 {
		t.Errorf("Resolve() = fallback=%v suggestions=%v, want plain fallback", resp.Fallback, resp.Suggestions)
	}
}

func TestResolveEmptyIndexDegradesToFuzzy(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	logger, _ := zap.NewDevelopment()
	idx := kb.NewAliasIndex(logger) // never reloaded: alias tier always misses
	cache := kb.NewConditionCache(store, time.Hour)
	svc := New(idx, store, cache, DefaultConfig(), logger)

	resp, err := svc.Resolve(context.Background(), "fever")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp.Fallback {
		t.Fatalf("Resolve(fever) fell back with an empty index, want the fuzzy tier to carry it")
	}
	if resp.Matches[0].Tier != TierFuzzy {
		t.Errorf("Matches[0].Tier = %s, want %s", resp.Matches[0].Tier, TierFuzzy)
	}
}

func TestResolveFuzzyFoldsDisplayNames(t *testing.T) {
	store := &fakeStore{conds: []kb.Condition{
		{
			CanonicalID: "Cuts and Bleeding",
			DisplayName: kb.Bilingual{EN: "Cuts & Bleeding"},
			Description: kb.Bilingual{EN: "Minor wound care."},
		},
	}}
	logger, _ := zap.NewDevelopment()
	idx := kb.NewAliasIndex(logger) // empty index so the fuzzy tier decides
	cache := kb.NewConditionCache(store, time.Hour)
	svc := New(idx, store, cache, DefaultConfig(), logger)

	// The candidate name folds to exactly the query; an unfolded comparison
	// would be penalized for the ampersand.
	resp, err := svc.Resolve(context.Background(), "cuts bleeding")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp.Fallback {
		t.Fatalf("Resolve(cuts bleeding) fell back, want a fuzzy match")
	}
	if resp.Matches[0].Tier != TierFuzzy {
		t.Errorf("Matches[0].Tier = %s, want %s", resp.Matches[0].Tier, TierFuzzy)
	}
	if resp.Matches[0].Score != 1.0 {
		t.Errorf("Matches[0].Score = %v, want 1.0 against the folded name", resp.Matches[0].Score)
	}
}

func TestResolveStoreFailurePropagates(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	svc := newTestService(t, store)

	store.failGet = true
	resp, err := svc.Resolve(context.Background(), "fever")
	if err == nil {
		t.Fatalf("Resolve() = %+v, want error when the store fails mid-aggregation", resp)
	}
	if !apperrors.IsStoreUnavailable(err) {
		t.Errorf("Resolve() error = %v, want store-unavailable", err)
	}
}

func TestResolveSkipsStaleIndexEntries(t *testing.T) {
	store := &fakeStore{conds: append(testConditions(), kb.Condition{
		CanonicalID: "Ghost",
		DisplayName: kb.Bilingual{EN: "Ghost"},
	})}
	svc := newTestService(t, store)

	// Condition removed after the index was built: the alias hit is stale.
	store.conds = store.conds[:len(store.conds)-1]

	resp, err := svc.Resolve(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("Resolve() error = %v, want stale entries skipped silently", err)
	}
	if !resp.Fallback {
		t.Errorf("Resolve(ghost) = %+v, want fallback once every match was stale", resp)
	}
}

func TestResolveListingFailureDegradesToFallback(t *testing.T) {
	store := &fakeStore{conds: testConditions()}
	svc := newTestService(t, store)

	// Cold cache and a dead store: both the fuzzy tier and the suggestion
	// ranking are skipped, never escalated to an error.
	store.failList = true
	resp, err := svc.Resolve(context.Background(), "unknown topic")
	if err != nil {
		t.Fatalf("Resolve() error = %v, want degraded fallback", err)
	}
	if !resp.Fallback || len(resp.Suggestions) != 0 {
		t.Errorf("Resolve() = fallback=%v suggestions=%v, want bare fallback", resp.Fallback, resp.Suggestions)
	}
	if resp.Message == nil || resp.Message.EN == "" {
		t.Errorf("fallback Message empty, want the not-found prompt even when degraded")
	}
}
