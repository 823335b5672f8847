package api

import (
	"context"
	"redadmin/internal/models"
)

func (c *Client) CheckinStats(ctx context.Context) (*models.CheckinStats, error) {
	var res models.CheckinStats
	if err := c.get(ctx, "/checkin/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CheckinConfig(ctx context.Context) (*models.CheckinConfig, error) {
	var res models.CheckinConfig
	if err := c.get(ctx, "/checkin/config", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListCheckinRecords(ctx context.Context, f models.PageFilter) (*models.Page[models.CheckinRecord], error) {
	var res models.Page[models.CheckinRecord]
	if err := c.get(ctx, "/checkin/records", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
