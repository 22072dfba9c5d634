package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"wellness-bot/kb"
)

func TestReloadRebuildsIndexAndDropsCaches(t *testing.T) {
	store := &fakeConditionStore{conds: namedConditions("Fever")}
	logger, _ := zap.NewDevelopment()

	idx := kb.NewAliasIndex(logger)
	cache := kb.NewConditionCache(store, time.Hour)
	res := &fakeResolver{resp: answerResponse()}
	responses := newTestResolveService(t, res, &fakeQueryLog{})
	svc := NewReloadService(idx, store, cache, responses, "", logger)

	// Warm the response cache so the reload has something to drop.
	if _, err := responses.Respond(context.Background(), "fever", ""); err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := idx.CanonicalIDs(); len(got) != 1 || got[0] != "Fever" {
		t.Errorf("CanonicalIDs() after reload = %v, want [Fever]", got)
	}

	// Cached response dropped: the next identical query re-resolves.
	if _, err := responses.Respond(context.Background(), "fever", ""); err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if res.calls != 2 {
		t.Errorf("resolver invoked %d times across reload, want 2", res.calls)
	}
}

func TestReloadStoreFailureLeavesIndexIntact(t *testing.T) {
	store := &fakeConditionStore{conds: namedConditions("Fever")}
	logger, _ := zap.NewDevelopment()

	idx := kb.NewAliasIndex(logger)
	if err := idx.Reload(context.Background(), store, nil); err != nil {
		t.Fatalf("index Reload() error = %v", err)
	}

	cache := kb.NewConditionCache(store, time.Hour)
	responses := newTestResolveService(t, &fakeResolver{resp: answerResponse()}, &fakeQueryLog{})
	svc := NewReloadService(idx, store, cache, responses, "", logger)

	store.failList = true
	if err := svc.Reload(context.Background()); err == nil {
		t.Fatal("Reload() with failing store returned nil error")
	}
	if got := idx.CanonicalIDs(); len(got) != 1 {
		t.Errorf("CanonicalIDs() = %v, want the previous snapshot preserved", got)
	}
}
