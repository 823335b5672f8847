package api

import (
	"context"
	"redadmin/internal/models"
)

func (c *Client) ListTransactions(ctx context.Context, f models.TransactionFilter) (*models.Page[models.Transaction], error) {
	var res models.Page[models.Transaction]
	if err := c.get(ctx, "/transactions/list", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) TransactionStats(ctx context.Context) (*models.TransactionStats, error) {
	var res models.TransactionStats
	if err := c.get(ctx, "/transactions/stats/overview", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) TransactionTrend(ctx context.Context, f models.TrendFilter) ([]models.TrendPoint, error) {
	var res []models.TrendPoint
	if err := c.get(ctx, "/transactions/stats/trend", f.Params(), &res); err != nil {
		return nil, err
	}
	return res, nil
}
