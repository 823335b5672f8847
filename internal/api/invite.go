package api

import (
	"context"
	"fmt"
	"redadmin/internal/models"
)

func (c *Client) InviteStats(ctx context.Context) (*models.InviteStats, error) {
	var res models.InviteStats
	if err := c.get(ctx, "/invite/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListInviteRecords(ctx context.Context, f models.PageFilter) (*models.Page[models.InviteRecord], error) {
	var res models.Page[models.InviteRecord]
	if err := c.get(ctx, "/invite/records", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) InviteTree(ctx context.Context, userId uint64) (*models.InviteTreeNode, error) {
	var res models.InviteTreeNode
	if err := c.get(ctx, fmt.Sprintf("/invite/tree/%d", userId), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
