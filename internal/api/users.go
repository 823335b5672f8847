package api

import (
	"context"
	"fmt"
	"redadmin/internal/models"
)

func (c *Client) ListUsers(ctx context.Context, f models.UserFilter) (*models.Page[models.User], error) {
	var res models.Page[models.User]
	if err := c.get(ctx, "/users/list", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	var res models.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) AdjustBalance(ctx context.Context, req models.AdjustBalanceRequest) error {
	return c.mutate(ctx, "/users/adjust-balance", req)
}

func (c *Client) SetBanned(ctx context.Context, req models.BanRequest) error {
	return c.mutate(ctx, "/users/ban", req)
}

func (c *Client) BatchOperation(ctx context.Context, req models.BatchOperationRequest) error {
	return c.mutate(ctx, "/users/batch-operation", req)
}
