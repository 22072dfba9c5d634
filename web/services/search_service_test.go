package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "wellness-bot/errors"
	"wellness-bot/kb"
)

type fakeConditionStore struct {
	conds    []kb.Condition
	failList bool
}

func (s *fakeConditionStore) GetCondition(ctx context.Context, canonicalID string) (kb.Condition, error) {
	for _, cond := range s.conds {
		if cond.CanonicalID == canonicalID {
			return cond, nil
		}
	}
	return kb.Condition{}, apperrors.WrapErrorf(apperrors.ErrNotFound, "condition %q", canonicalID)
}

func (s *fakeConditionStore) AllConditions(ctx context.Context) ([]kb.Condition, error) {
	if s.failList {
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, "listing conditions")
	}
	return s.conds, nil
}

func namedConditions(names ...string) []kb.Condition {
	conds := make([]kb.Condition, len(names))
	for i, name := range names {
		conds[i] = kb.Condition{CanonicalID: name, DisplayName: kb.Bilingual{EN: name}}
	}
	return conds
}

func TestSuggestRanksPrefixMatches(t *testing.T) {
	store := &fakeConditionStore{conds: namedConditions("Fever", "Fatigue", "Cough")}
	logger, _ := zap.NewDevelopment()
	svc := NewSearchService(kb.NewConditionCache(store, time.Hour), 5, logger)

	got := svc.Suggest(context.Background(), "fev")
	if len(got) != 1 || got[0] != "Fever" {
		t.Errorf("Suggest(fev) = %v, want [Fever]", got)
	}
}

func TestSuggestHonorsLimit(t *testing.T) {
	store := &fakeConditionStore{conds: namedConditions("Fatigue", "Headache", "Nausea", "Earache")}
	logger, _ := zap.NewDevelopment()
	svc := NewSearchService(kb.NewConditionCache(store, time.Hour), 2, logger)

	if got := svc.Suggest(context.Background(), "a"); len(got) != 2 {
		t.Errorf("Suggest(a) = %v, want exactly 2 suggestions", got)
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	store := &fakeConditionStore{conds: namedConditions("Fever")}
	logger, _ := zap.NewDevelopment()
	svc := NewSearchService(kb.NewConditionCache(store, time.Hour), 5, logger)

	if got := svc.Suggest(context.Background(), ""); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
}

func TestSuggestDegradesWhenStoreUnavailable(t *testing.T) {
	store := &fakeConditionStore{failList: true}
	logger, _ := zap.NewDevelopment()
	svc := NewSearchService(kb.NewConditionCache(store, time.Hour), 5, logger)

	if got := svc.Suggest(context.Background(), "fever"); got != nil {
		t.Errorf("Suggest() = %v, want nil on store failure", got)
	}
}
