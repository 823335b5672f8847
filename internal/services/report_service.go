package services

import (
	"context"
	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/models"
)

type ReportService struct {
	api   *api.Client
	cache *cache.QueryCache
}

func NewReportService(client *api.Client, qc *cache.QueryCache) *ReportService {
	return &ReportService{
		api:   client,
		cache: qc,
	}
}

func (s *ReportService) Generate(ctx context.Context, reportType, dateFrom, dateTo string) error {
	req := models.GenerateReportRequest{
		ReportType: reportType,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	}
	if err := s.api.GenerateReport(ctx, req); err != nil {
		return err
	}
	s.cache.InvalidateMutation("reports.generate")
	return nil
}

func (s *ReportService) List(ctx context.Context, f models.PageFilter, force bool) cache.Result[*models.Page[models.Report]] {
	return cache.Fetch(ctx, s.cache, cache.TagReports, f.Params(), force, func(ctx context.Context) (*models.Page[models.Report], error) {
		return s.api.ListReports(ctx, f)
	})
}

// Download fetches the generated file. Downloads are never cached.
func (s *ReportService) Download(ctx context.Context, id uint64) ([]byte, string, error) {
	return s.api.DownloadReport(ctx, id)
}
