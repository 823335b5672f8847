package api

import (
	"context"
	"fmt"
	"redadmin/internal/models"
)

func (c *Client) SecurityStats(ctx context.Context) (*models.SecurityStats, error) {
	var res models.SecurityStats
	if err := c.get(ctx, "/security/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) SecurityTrends(ctx context.Context, f models.TrendFilter) ([]models.TrendPoint, error) {
	var res []models.TrendPoint
	if err := c.get(ctx, "/security/trends", f.Params(), &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) ListRiskUsers(ctx context.Context, f models.PageFilter) (*models.Page[models.RiskUser], error) {
	var res models.Page[models.RiskUser]
	if err := c.get(ctx, "/security/risk/users", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListAlerts(ctx context.Context, f models.AlertFilter) (*models.Page[models.Alert], error) {
	var res models.Page[models.Alert]
	if err := c.get(ctx, "/security/alerts", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) AlertAction(ctx context.Context, id uint64, req models.AlertActionRequest) error {
	return c.mutate(ctx, fmt.Sprintf("/security/alerts/%d/action", id), req)
}

func (c *Client) ListDevices(ctx context.Context, f models.DeviceFilter) (*models.Page[models.Device], error) {
	var res models.Page[models.Device]
	if err := c.get(ctx, "/security/devices", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeviceAction(ctx context.Context, id uint64, req models.DeviceActionRequest) error {
	return c.mutate(ctx, fmt.Sprintf("/security/devices/%d/action", id), req)
}

func (c *Client) ListIpSessions(ctx context.Context, f models.IpSessionFilter) (*models.Page[models.IPSession], error) {
	var res models.Page[models.IPSession]
	if err := c.get(ctx, "/security/ip-sessions", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) IpStats(ctx context.Context) (*models.IpStats, error) {
	var res models.IpStats
	if err := c.get(ctx, "/security/ip-stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) IpAction(ctx context.Context, ip string, req models.IpActionRequest) error {
	return c.mutate(ctx, "/security/ip/"+ip+"/action", req)
}

func (c *Client) LiquidityStats(ctx context.Context) (*models.LiquidityStats, error) {
	var res models.LiquidityStats
	if err := c.get(ctx, "/security/liquidity/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListLiquidityEntries(ctx context.Context, f models.LiquidityFilter) (*models.Page[models.LiquidityEntry], error) {
	var res models.Page[models.LiquidityEntry]
	if err := c.get(ctx, "/security/liquidity/entries", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) AdjustLiquidity(ctx context.Context, req models.LiquidityAdjustRequest) error {
	return c.mutate(ctx, "/security/liquidity/adjust", req)
}
