package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeUnmatchedCounter struct {
	since time.Time
	count int
}

func (f *fakeUnmatchedCounter) CountUnmatchedSince(ctx context.Context, since time.Time) (int, error) {
	f.since = since
	return f.count, nil
}

func TestUnmatchedCountUsesTrailingWindow(t *testing.T) {
	counter := &fakeUnmatchedCounter{count: 3}
	logger, _ := zap.NewDevelopment()
	svc := NewStatsService(counter, logger)

	got, err := svc.UnmatchedCount(context.Background(), 24*time.Hour)
	if err != nil {
		t.Fatalf("UnmatchedCount() error = %v", err)
	}
	if got != 3 {
		t.Errorf("UnmatchedCount() = %d, want 3", got)
	}

	want := time.Now().Add(-24 * time.Hour)
	if diff := counter.since.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cutoff passed to the store = %v, want about %v", counter.since, want)
	}
}
