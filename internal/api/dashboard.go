package api

import (
	"context"
	"redadmin/internal/models"
)

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var res models.DashboardStats
	if err := c.get(ctx, "/stats/overview", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
