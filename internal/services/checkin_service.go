package services

import (
	"context"
	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/models"
)

type CheckinService struct {
	api   *api.Client
	cache *cache.QueryCache
}

func NewCheckinService(client *api.Client, qc *cache.QueryCache) *CheckinService {
	return &CheckinService{
		api:   client,
		cache: qc,
	}
}

func (s *CheckinService) Stats(ctx context.Context, force bool) cache.Result[*models.CheckinStats] {
	return cache.Fetch(ctx, s.cache, cache.TagCheckin, nil, force, func(ctx context.Context) (*models.CheckinStats, error) {
		return s.api.CheckinStats(ctx)
	})
}

func (s *CheckinService) Config(ctx context.Context, force bool) cache.Result[*models.CheckinConfig] {
	params := map[string]string{"view": "config"}
	return cache.Fetch(ctx, s.cache, cache.TagCheckin, params, force, func(ctx context.Context) (*models.CheckinConfig, error) {
		return s.api.CheckinConfig(ctx)
	})
}

func (s *CheckinService) Records(ctx context.Context, f models.PageFilter, force bool) cache.Result[*models.Page[models.CheckinRecord]] {
	return cache.Fetch(ctx, s.cache, cache.TagCheckin, f.Params(), force, func(ctx context.Context) (*models.Page[models.CheckinRecord], error) {
		return s.api.ListCheckinRecords(ctx, f)
	})
}
