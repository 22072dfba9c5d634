package services

import (
	"context"

	"go.uber.org/zap"

	"wellness-bot/kb"
)

// ReloadService is the explicit cache-invalidation path the admin write side
// calls after editing the knowledge base: rebuild the alias index snapshot,
// drop the condition listing and drop cached responses, in that order.
type ReloadService struct {
	index     *kb.AliasIndex
	store     kb.Store
	cache     *kb.ConditionCache
	responses *ResolveService
	aliasPath string
	logger    *zap.Logger
}

func NewReloadService(index *kb.AliasIndex, store kb.Store, cache *kb.ConditionCache, responses *ResolveService, aliasPath string, logger *zap.Logger) *ReloadService {
	return &ReloadService{
		index:     index,
		store:     store,
		cache:     cache,
		responses: responses,
		aliasPath: aliasPath,
		logger:    logger,
	}
}

// Reload rebuilds everything derived from the condition store. The alias
// index swap is atomic; in-flight resolutions finish on the old snapshot.
func (s *ReloadService) Reload(ctx context.Context) error {
	extra, err := kb.LoadAliasFile(s.aliasPath)
	if err != nil {
		// A malformed alias file shouldn't block reloading generated aliases.
		s.logger.Warn("Ignoring alias file during reload", zap.Error(err))
	}

	if err := s.index.Reload(ctx, s.store, extra); err != nil {
		return err
	}

	s.cache.Invalidate()
	s.responses.Invalidate()
	s.logger.Info("Knowledge base reloaded")
	return nil
}
