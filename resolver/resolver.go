// Package resolver implements the query resolution engine: normalization,
// tiered alias/fuzzy matching against the knowledge base, bilingual answer
// aggregation and the conversational/suggestion fallback.
package resolver

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"wellness-bot/kb"
	"wellness-bot/textutil"
)

// Config carries the matching thresholds. All comparisons are inclusive: a
// score exactly at a threshold is accepted.
type Config struct {
	FuzzyThreshold      float64
	DedupThreshold      float64
	SuggestionThreshold float64
	SuggestionLimit     int
}

// DefaultConfig returns the documented threshold set.
func DefaultConfig() Config {
	return Config{
		FuzzyThreshold:      0.7,
		DedupThreshold:      0.8,
		SuggestionThreshold: 0.6,
		SuggestionLimit:     3,
	}
}

// Service resolves free-text wellness queries against the knowledge base.
// It is stateless across calls and safe for concurrent use: the alias index
// and condition cache it reads are immutable snapshots.
type Service struct {
	index  *kb.AliasIndex
	store  kb.Store
	cache  *kb.ConditionCache
	cfg    Config
	logger *zap.Logger
}

func New(index *kb.AliasIndex, store kb.Store, cache *kb.ConditionCache, cfg Config, logger *zap.Logger) *Service {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = 3
	}
	return &Service{
		index:  index,
		store:  store,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

// Resolve runs the full pipeline for one raw utterance. It returns exactly
// one of an aggregated answer or a fallback response; "no match" is an
// expected outcome, never an error. A non-nil error means the store was
// unreachable while fetching matched conditions, which the caller may retry
// or surface as a generic failure.
func (s *Service) Resolve(ctx context.Context, rawText string) (*Response, error) {
	query := Normalize(rawText)

	// Empty input never touches the index or the store.
	if query.IsEmpty() {
		return emptyQueryResponse(query.Language), nil
	}

	// Conversational shortcut: greetings, thanks and goodbyes get canned
	// bilingual replies without any knowledge-base lookup.
	if reply, ok := conversationalReply(query.Text); ok {
		return &Response{
			Fallback:       true,
			Message:        &reply,
			Language:       query.Language,
			Conversational: true,
		}, nil
	}

	matches := s.match(ctx, query)
	if len(matches) == 0 {
		return s.suggestFallback(ctx, query), nil
	}

	answer, kept, err := s.aggregate(ctx, matches)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		// Every matched id was stale; treat as unmatched.
		return s.suggestFallback(ctx, query), nil
	}

	return &Response{
		Answer:   answer,
		Language: query.Language,
		Matches:  kept,
	}, nil
}

// match runs the tiered strategy. The first tier producing a result for a
// segment wins; the substring tier keeps the union of every alias hit rather
// than picking a winner, trading precision for recall on ambiguous queries.
func (s *Service) match(ctx context.Context, query NormalizedQuery) []Match {
	// Tier 1: curated override phrases, exact folded match. An override may
	// deliberately map a recognized phrase to nothing.
	if canonical, deliberate, ok := s.index.ResolveOverride(query.Text); ok {
		if deliberate {
			return nil
		}
		return []Match{{CanonicalID: canonical, Tier: TierOverride, Score: 1.0}}
	}

	// Tier 2+3: split on connectives, then scan alias substrings per segment.
	matches := s.matchAliases(query)
	if len(matches) > 0 {
		return matches
	}

	// Tier 4: fuzzy single-best against display names for the whole query,
	// only when the substring tier produced nothing at all.
	return s.matchFuzzy(ctx, query)
}

func (s *Service) matchAliases(query NormalizedQuery) []Match {
	// Hindi queries scan both scripts: the normalizer rewrites known Hindi
	// terms to English keywords, so English aliases stay reachable.
	langs := []string{query.Language}
	if query.Language == kb.LangHindi {
		langs = append(langs, kb.LangEnglish)
	}

	var matches []Match
	seen := map[string]struct{}{}
	for _, segment := range splitSegments(query.Text) {
		for _, id := range s.index.CanonicalIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			for _, lang := range langs {
				if aliasInSegment(s.index.AliasesFor(id, lang), segment) {
					seen[id] = struct{}{}
					matches = append(matches, Match{CanonicalID: id, Tier: TierAlias, Score: 1.0})
					break
				}
			}
		}
	}
	return matches
}

// aliasInSegment is deliberately substring containment, not token-boundary
// matching, to tolerate Hindi agglutination and partial-word hits.
func aliasInSegment(aliases []string, segment string) bool {
	for _, alias := range aliases {
		if strings.Contains(segment, alias) {
			return true
		}
	}
	return false
}

func (s *Service) matchFuzzy(ctx context.Context, query NormalizedQuery) []Match {
	conditions, err := s.cache.GetOrRefresh(ctx)
	if err != nil {
		// An unreachable store degrades fuzzy matching to a miss; the caller
		// still gets the terminal fallback rather than a crash.
		s.logger.Warn("Fuzzy tier skipped, condition listing unavailable", zap.Error(err))
		return nil
	}

	best := Match{}
	for _, cond := range conditions {
		// Candidates fold through the same pipeline as the query; a punctuated
		// display name must not shift scores around the threshold.
		name := textutil.Fold(cond.DisplayName.Get(query.Language))
		if name == "" {
			continue
		}
		score := similarityRatio(query.Text, name)
		if score >= s.cfg.FuzzyThreshold && score > best.Score {
			best = Match{CanonicalID: cond.CanonicalID, Tier: TierFuzzy, Score: score}
		}
	}
	if best.CanonicalID == "" {
		return nil
	}
	return []Match{best}
}

