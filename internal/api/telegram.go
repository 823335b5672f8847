package api

import (
	"context"
	"fmt"
	"redadmin/internal/models"
)

func (c *Client) ListGroups(ctx context.Context, f models.PageFilter) (*models.Page[models.TelegramGroup], error) {
	var res models.Page[models.TelegramGroup]
	if err := c.get(ctx, "/telegram/groups", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) SetGroupEnabled(ctx context.Context, id uint64, enabled bool) error {
	path := fmt.Sprintf("/telegram/groups/%d/disable", id)
	if enabled {
		path = fmt.Sprintf("/telegram/groups/%d/enable", id)
	}
	return c.mutate(ctx, path, nil)
}

func (c *Client) ListMessages(ctx context.Context, f models.PageFilter) (*models.Page[models.TelegramMessage], error) {
	var res models.Page[models.TelegramMessage]
	if err := c.get(ctx, "/telegram/messages", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListTemplates(ctx context.Context, f models.PageFilter) (*models.Page[models.MessageTemplate], error) {
	var res models.Page[models.MessageTemplate]
	if err := c.get(ctx, "/telegram/templates", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateTemplate(ctx context.Context, req models.TemplateRequest) error {
	return c.mutate(ctx, "/telegram/templates", req)
}

func (c *Client) UpdateTemplate(ctx context.Context, id uint64, req models.TemplateRequest) error {
	return c.mutate(ctx, fmt.Sprintf("/telegram/templates/%d", id), req)
}

func (c *Client) ToggleTemplate(ctx context.Context, id uint64) error {
	return c.mutate(ctx, fmt.Sprintf("/telegram/templates/%d/toggle", id), nil)
}

func (c *Client) SendMessage(ctx context.Context, req models.SendMessageRequest) error {
	return c.mutate(ctx, "/telegram/send-message", req)
}

func (c *Client) ResolveId(ctx context.Context, username string) (*models.ResolveIdResponse, error) {
	var res models.ResolveIdResponse
	if err := c.post(ctx, "/telegram/resolve-id", models.ResolveIdRequest{Username: username}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
