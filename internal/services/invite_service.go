package services

import (
	"context"
	"fmt"
	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/models"
)

type InviteService struct {
	api   *api.Client
	cache *cache.QueryCache
}

func NewInviteService(client *api.Client, qc *cache.QueryCache) *InviteService {
	return &InviteService{
		api:   client,
		cache: qc,
	}
}

func (s *InviteService) Stats(ctx context.Context, force bool) cache.Result[*models.InviteStats] {
	return cache.Fetch(ctx, s.cache, cache.TagInvite, nil, force, func(ctx context.Context) (*models.InviteStats, error) {
		return s.api.InviteStats(ctx)
	})
}

func (s *InviteService) Records(ctx context.Context, f models.PageFilter, force bool) cache.Result[*models.Page[models.InviteRecord]] {
	return cache.Fetch(ctx, s.cache, cache.TagInvite, f.Params(), force, func(ctx context.Context) (*models.Page[models.InviteRecord], error) {
		return s.api.ListInviteRecords(ctx, f)
	})
}

func (s *InviteService) Tree(ctx context.Context, userId uint64, force bool) cache.Result[*models.InviteTreeNode] {
	params := map[string]string{"user_id": fmt.Sprint(userId)}
	return cache.Fetch(ctx, s.cache, cache.TagInvite, params, force, func(ctx context.Context) (*models.InviteTreeNode, error) {
		return s.api.InviteTree(ctx, userId)
	})
}
