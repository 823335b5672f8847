package api

import (
	"context"
	"fmt"
	"redadmin/internal/models"
)

func (c *Client) GenerateReport(ctx context.Context, req models.GenerateReportRequest) error {
	return c.mutate(ctx, "/reports/generate", req)
}

func (c *Client) ListReports(ctx context.Context, f models.PageFilter) (*models.Page[models.Report], error) {
	var res models.Page[models.Report]
	if err := c.get(ctx, "/reports", f.Params(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DownloadReport(ctx context.Context, id uint64) ([]byte, string, error) {
	return c.getBinary(ctx, fmt.Sprintf("/reports/%d/download", id))
}
