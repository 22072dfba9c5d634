package services

import (
	"context"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"

	"wellness-bot/kb"
)

// SearchService powers the search-bar typeahead: cheap ranked fuzzy matching
// of a partial query against condition display names. This is a UI
// convenience distinct from the resolver's similarity-ratio tiers, so it uses
// subsequence ranking that behaves well on prefixes.
type SearchService struct {
	cache  *kb.ConditionCache
	limit  int
	logger *zap.Logger
}

func NewSearchService(cache *kb.ConditionCache, limit int, logger *zap.Logger) *SearchService {
	if limit <= 0 {
		limit = 5
	}
	return &SearchService{cache: cache, limit: limit, logger: logger}
}

// Suggest returns up to limit condition names matching the partial query,
// best rank first. An unreachable store degrades to no suggestions.
func (s *SearchService) Suggest(ctx context.Context, query string) []string {
	if query == "" {
		return nil
	}

	conditions, err := s.cache.GetOrRefresh(ctx)
	if err != nil {
		s.logger.Warn("Search suggestions unavailable", zap.Error(err))
		return nil
	}

	names := make([]string, 0, len(conditions))
	for _, cond := range conditions {
		if cond.DisplayName.EN != "" {
			names = append(names, cond.DisplayName.EN)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	out := make([]string, 0, s.limit)
	for _, rank := range ranks {
		out = append(out, rank.Target)
		if len(out) == s.limit {
			break
		}
	}
	return out
}
