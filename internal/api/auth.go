package api

import (
	"context"
	"redadmin/internal/models"
)

func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var res models.LoginResponse
	req := models.LoginRequest{
		Username: username,
		Password: password,
	}
	if err := c.post(ctx, "/auth/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Me(ctx context.Context) (*models.Admin, error) {
	var res models.Admin
	if err := c.get(ctx, "/auth/me", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
