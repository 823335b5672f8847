package services

import (
	"context"
	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/models"
)

type DashboardService struct {
	api   *api.Client
	cache *cache.QueryCache
}

func NewDashboardService(client *api.Client, qc *cache.QueryCache) *DashboardService {
	return &DashboardService{
		api:   client,
		cache: qc,
	}
}

func (s *DashboardService) Stats(ctx context.Context, force bool) cache.Result[*models.DashboardStats] {
	return cache.Fetch(ctx, s.cache, cache.TagDashboard, nil, force, func(ctx context.Context) (*models.DashboardStats, error) {
		return s.api.DashboardStats(ctx)
	})
}
