package services

import (
	"context"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"wellness-bot/database"
	"wellness-bot/resolver"
	"wellness-bot/textutil"
)

// QueryResolver is the core pipeline contract this service wraps.
type QueryResolver interface {
	Resolve(ctx context.Context, rawText string) (*resolver.Response, error)
}

// QueryLogger persists resolution outcomes for analytics.
type QueryLogger interface {
	LogQuery(ctx context.Context, entry database.QueryLogEntry) error
}

// ResolveService fronts the resolver with a bounded response cache and the
// analytics logging the caller contract requires. The core itself stays
// side-effect free; all persistence happens here.
type ResolveService struct {
	resolver QueryResolver
	logs     QueryLogger
	cache    *lru.Cache // folded query -> *resolver.Response
	logger   *zap.Logger
}

func NewResolveService(res QueryResolver, logs QueryLogger, cacheSize int, logger *zap.Logger) (*ResolveService, error) {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &ResolveService{
		resolver: res,
		logs:     logs,
		cache:    cache,
		logger:   logger,
	}, nil
}

// Respond resolves rawText and logs the outcome. Identical queries (after
// folding) are served from the cache without re-running the matching tiers;
// each request is still logged so analytics stay complete.
func (s *ResolveService) Respond(ctx context.Context, rawText, userEmail string) (*resolver.Response, error) {
	key := textutil.Fold(rawText)

	var response *resolver.Response
	if cached, ok := s.cache.Get(key); ok && key != "" {
		response = cached.(*resolver.Response)
	} else {
		var err error
		response, err = s.resolver.Resolve(ctx, rawText)
		if err != nil {
			return nil, err
		}
		if key != "" {
			s.cache.Add(key, response)
		}
	}

	// Greetings and the empty-input prompt are not knowledge-base traffic.
	if !response.Conversational {
		s.logOutcome(ctx, rawText, userEmail, response)
	}
	return response, nil
}

// Invalidate drops all cached responses. Called after a knowledge-base
// reload so stale answers never outlive an admin edit.
func (s *ResolveService) Invalidate() {
	s.cache.Purge()
}

func (s *ResolveService) logOutcome(ctx context.Context, rawText, userEmail string, response *resolver.Response) {
	entry := database.QueryLogEntry{
		QueryText:        rawText,
		QueryLanguage:    response.Language,
		ResponseLanguage: response.Language,
		Email:            userEmail,
	}

	if response.Fallback {
		entry.Intent = "unknown"
		if response.Message != nil {
			entry.BotResponse = response.Message.Get(response.Language)
		}
	} else {
		// Intent is the first matched condition's category, falling back to a
		// generic lookup marker for conditions seeded without one.
		entry.Intent = "kb_lookup"
		if len(response.Matches) > 0 && response.Matches[0].IntentCategory != "" {
			entry.Intent = response.Matches[0].IntentCategory
		}
		entry.MatchedConditions = response.MatchedIDs()
		entry.BotResponse = response.Description.Get(response.Language)
	}

	// Logging is best-effort; a failed insert must not fail the response.
	if err := s.logs.LogQuery(ctx, entry); err != nil {
		s.logger.Warn("Failed to log query", zap.Error(err))
	}
}
