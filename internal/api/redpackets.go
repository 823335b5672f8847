package api

import (
	"context"
	"redadmin/internal/models"
)

func (c *Client) ListRedPackets(ctx context.Context, f models.RedPacketFilter) (*models.Page[models.RedPacket], error) {
	var res models.Page[models.RedPacket]
	if err := c.get(ctx, "/redpackets/list", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetRedPacket(ctx context.Context, uuid string) (*models.RedPacket, error) {
	var res models.RedPacket
	if err := c.get(ctx, "/redpackets/"+uuid, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RedPacketStats(ctx context.Context) (*models.RedPacketStats, error) {
	var res models.RedPacketStats
	if err := c.get(ctx, "/redpackets/stats/overview", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RedPacketTrend(ctx context.Context, f models.TrendFilter) ([]models.TrendPoint, error) {
	var res []models.TrendPoint
	if err := c.get(ctx, "/redpackets/stats/trend", f.Params(), &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) RefundRedPacket(ctx context.Context, uuid string) error {
	return c.mutate(ctx, "/redpackets/"+uuid+"/refund", nil)
}

func (c *Client) ExtendRedPacket(ctx context.Context, uuid string, hours int) error {
	return c.mutate(ctx, "/redpackets/"+uuid+"/extend", models.ExtendRequest{Hours: hours})
}

func (c *Client) CompleteRedPacket(ctx context.Context, uuid string) error {
	return c.mutate(ctx, "/redpackets/"+uuid+"/complete", nil)
}

func (c *Client) DeleteRedPacket(ctx context.Context, uuid string) error {
	return c.del(ctx, "/redpackets/"+uuid)
}
