package services

import (
	"context"
	"errors"
	"strings"

	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/models"
)

var ErrEmptyReason = errors.New("reason is required")

const (
	AlertActionResolve  = "resolve"
	AlertActionDismiss  = "dismiss"
	AlertActionEscalate = "escalate"

	DeviceActionBlock   = "block"
	DeviceActionUnblock = "unblock"
	DeviceActionTrust   = "trust"

	IpActionBlock   = "block"
	IpActionUnblock = "unblock"
)

type SecurityService struct {
	api   *api.Client
	cache *cache.QueryCache
}

func NewSecurityService(client *api.Client, qc *cache.QueryCache) *SecurityService {
	return &SecurityService{
		api:   client,
		cache: qc,
	}
}

func (s *SecurityService) Stats(ctx context.Context, force bool) cache.Result[*models.SecurityStats] {
	return cache.Fetch(ctx, s.cache, cache.TagSecurityStats, nil, force, func(ctx context.Context) (*models.SecurityStats, error) {
		return s.api.SecurityStats(ctx)
	})
}

func (s *SecurityService) Trends(ctx context.Context, f models.TrendFilter, force bool) cache.Result[[]models.TrendPoint] {
	return cache.Fetch(ctx, s.cache, cache.TagSecurityStats, f.Params(), force, func(ctx context.Context) ([]models.TrendPoint, error) {
		return s.api.SecurityTrends(ctx, f)
	})
}

func (s *SecurityService) RiskUsers(ctx context.Context, f models.PageFilter, force bool) cache.Result[*models.Page[models.RiskUser]] {
	return cache.Fetch(ctx, s.cache, cache.TagRiskUsers, f.Params(), force, func(ctx context.Context) (*models.Page[models.RiskUser], error) {
		return s.api.ListRiskUsers(ctx, f)
	})
}

func (s *SecurityService) Alerts(ctx context.Context, f models.AlertFilter, force bool) cache.Result[*models.Page[models.Alert]] {
	return cache.Fetch(ctx, s.cache, cache.TagAlerts, f.Params(), force, func(ctx context.Context) (*models.Page[models.Alert], error) {
		return s.api.ListAlerts(ctx, f)
	})
}

// CanEscalate keeps escalation a one-way ratchet: once an alert is critical
// there is nowhere further to go and the action is not offered.
func (s *SecurityService) CanEscalate(a *models.Alert) bool {
	return !a.IsResolved && a.RiskLevel != models.RiskCritical
}

func (s *SecurityService) AlertAction(ctx context.Context, id uint64, action, note string) error {
	req := models.AlertActionRequest{
		Action: action,
		Note:   note,
	}
	if err := s.api.AlertAction(ctx, id, req); err != nil {
		return err
	}
	s.cache.InvalidateMutation("alerts.action")
	return nil
}

func (s *SecurityService) Devices(ctx context.Context, f models.DeviceFilter, force bool) cache.Result[*models.Page[models.Device]] {
	return cache.Fetch(ctx, s.cache, cache.TagDevices, f.Params(), force, func(ctx context.Context) (*models.Page[models.Device], error) {
		return s.api.ListDevices(ctx, f)
	})
}

func (s *SecurityService) DeviceAction(ctx context.Context, id uint64, action string) error {
	if err := s.api.DeviceAction(ctx, id, models.DeviceActionRequest{Action: action}); err != nil {
		return err
	}
	s.cache.InvalidateMutation("devices.action")
	return nil
}

func (s *SecurityService) IpSessions(ctx context.Context, f models.IpSessionFilter, force bool) cache.Result[*models.Page[models.IPSession]] {
	return cache.Fetch(ctx, s.cache, cache.TagIpSessions, f.Params(), force, func(ctx context.Context) (*models.Page[models.IPSession], error) {
		return s.api.ListIpSessions(ctx, f)
	})
}

func (s *SecurityService) IpStats(ctx context.Context, force bool) cache.Result[*models.IpStats] {
	params := map[string]string{"view": "ip-stats"}
	return cache.Fetch(ctx, s.cache, cache.TagIpSessions, params, force, func(ctx context.Context) (*models.IpStats, error) {
		return s.api.IpStats(ctx)
	})
}

func (s *SecurityService) IpAction(ctx context.Context, ip, action string) error {
	if err := s.api.IpAction(ctx, ip, models.IpActionRequest{Action: action}); err != nil {
		return err
	}
	s.cache.InvalidateMutation("ip.action")
	return nil
}

func (s *SecurityService) LiquidityStats(ctx context.Context, force bool) cache.Result[*models.LiquidityStats] {
	return cache.Fetch(ctx, s.cache, cache.TagLiquidityStats, nil, force, func(ctx context.Context) (*models.LiquidityStats, error) {
		return s.api.LiquidityStats(ctx)
	})
}

func (s *SecurityService) LiquidityEntries(ctx context.Context, f models.LiquidityFilter, force bool) cache.Result[*models.Page[models.LiquidityEntry]] {
	return cache.Fetch(ctx, s.cache, cache.TagLiquidityEntries, f.Params(), force, func(ctx context.Context) (*models.Page[models.LiquidityEntry], error) {
		return s.api.ListLiquidityEntries(ctx, f)
	})
}

// AdjustLiquidity forces an entry into any withdrawable status. The only
// client-side rule is the mandatory reason: an empty one is rejected before
// anything goes on the wire. Whether the server checks transition legality is
// its own business. Success touches two views of the same ledger, so both
// get invalidated.
func (s *SecurityService) AdjustLiquidity(ctx context.Context, entryId uint64, newStatus, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}
	req := models.LiquidityAdjustRequest{
		EntryId:   entryId,
		NewStatus: newStatus,
		Reason:    reason,
	}
	if err := s.api.AdjustLiquidity(ctx, req); err != nil {
		return err
	}
	s.cache.InvalidateMutation("liquidity.adjust")
	return nil
}
