package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// UnmatchedCounter is the slice of the query log the stats endpoint reads.
type UnmatchedCounter interface {
	CountUnmatchedSince(ctx context.Context, since time.Time) (int, error)
}

// StatsService surfaces alias-coverage numbers for curators: how many recent
// queries resolved to nothing. Unmatched queries are the raw material for new
// aliases and override phrases, so the count is the cheapest signal that the
// knowledge base has drifted behind its users.
type StatsService struct {
	logs   UnmatchedCounter
	logger *zap.Logger
}

func NewStatsService(logs UnmatchedCounter, logger *zap.Logger) *StatsService {
	return &StatsService{logs: logs, logger: logger}
}

// UnmatchedCount returns the number of queries logged with the unknown intent
// inside the trailing window.
func (s *StatsService) UnmatchedCount(ctx context.Context, window time.Duration) (int, error) {
	return s.logs.CountUnmatchedSince(ctx, time.Now().Add(-window))
}
