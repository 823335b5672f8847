package services

import (
	"context"
	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/models"
)

type TransactionService struct {
	api   *api.Client
	cache *cache.QueryCache
}

func NewTransactionService(client *api.Client, qc *cache.QueryCache) *TransactionService {
	return &TransactionService{
		api:   client,
		cache: qc,
	}
}

func (s *TransactionService) List(ctx context.Context, f models.TransactionFilter, force bool) cache.Result[*models.Page[models.Transaction]] {
	return cache.Fetch(ctx, s.cache, cache.TagTransactions, f.Params(), force, func(ctx context.Context) (*models.Page[models.Transaction], error) {
		return s.api.ListTransactions(ctx, f)
	})
}

func (s *TransactionService) Stats(ctx context.Context, force bool) cache.Result[*models.TransactionStats] {
	return cache.Fetch(ctx, s.cache, cache.TagTransactionStats, nil, force, func(ctx context.Context) (*models.TransactionStats, error) {
		return s.api.TransactionStats(ctx)
	})
}

func (s *TransactionService) Trend(ctx context.Context, f models.TrendFilter, force bool) cache.Result[[]models.TrendPoint] {
	return cache.Fetch(ctx, s.cache, cache.TagTransactionStats, f.Params(), force, func(ctx context.Context) ([]models.TrendPoint, error) {
		return s.api.TransactionTrend(ctx, f)
	})
}
