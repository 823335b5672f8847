package services

import (
	"context"
	"errors"
	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/models"
)

var ErrBadExtendHours = errors.New("extend hours must be positive")

type RedPacketService struct {
	api   *api.Client
	cache *cache.QueryCache
}

func NewRedPacketService(client *api.Client, qc *cache.QueryCache) *RedPacketService {
	return &RedPacketService{
		api:   client,
		cache: qc,
	}
}

func (s *RedPacketService) List(ctx context.Context, f models.RedPacketFilter, force bool) cache.Result[*models.Page[models.RedPacket]] {
	return cache.Fetch(ctx, s.cache, cache.TagRedPackets, f.Params(), force, func(ctx context.Context) (*models.Page[models.RedPacket], error) {
		return s.api.ListRedPackets(ctx, f)
	})
}

func (s *RedPacketService) Get(ctx context.Context, uuid string, force bool) cache.Result[*models.RedPacket] {
	params := map[string]string{"uuid": uuid}
	return cache.Fetch(ctx, s.cache, cache.TagRedPackets, params, force, func(ctx context.Context) (*models.RedPacket, error) {
		return s.api.GetRedPacket(ctx, uuid)
	})
}

func (s *RedPacketService) Stats(ctx context.Context, force bool) cache.Result[*models.RedPacketStats] {
	return cache.Fetch(ctx, s.cache, cache.TagRedPacketStats, nil, force, func(ctx context.Context) (*models.RedPacketStats, error) {
		return s.api.RedPacketStats(ctx)
	})
}

func (s *RedPacketService) Trend(ctx context.Context, f models.TrendFilter, force bool) cache.Result[[]models.TrendPoint] {
	return cache.Fetch(ctx, s.cache, cache.TagRedPacketStats, f.Params(), force, func(ctx context.Context) ([]models.TrendPoint, error) {
		return s.api.RedPacketTrend(ctx, f)
	})
}

// CanRefund decides whether the refund action is shown at all. The server is
// not asked twice: a packet with claims or an already refunded packet simply
// never gets the button.
func (s *RedPacketService) CanRefund(p *models.RedPacket) bool {
	return p.Status != models.PacketStatusRefunded && p.ClaimedCount == 0
}

func (s *RedPacketService) CanExtend(p *models.RedPacket) bool {
	return p.Status == models.PacketStatusActive
}

func (s *RedPacketService) CanComplete(p *models.RedPacket) bool {
	return p.Status == models.PacketStatusActive
}

func (s *RedPacketService) Refund(ctx context.Context, uuid string) error {
	if err := s.api.RefundRedPacket(ctx, uuid); err != nil {
		return err
	}
	s.cache.InvalidateMutation("redpackets.refund")
	return nil
}

func (s *RedPacketService) Extend(ctx context.Context, uuid string, hours int) error {
	if hours <= 0 {
		return ErrBadExtendHours
	}
	if err := s.api.ExtendRedPacket(ctx, uuid, hours); err != nil {
		return err
	}
	s.cache.InvalidateMutation("redpackets.extend")
	return nil
}

func (s *RedPacketService) Complete(ctx context.Context, uuid string) error {
	if err := s.api.CompleteRedPacket(ctx, uuid); err != nil {
		return err
	}
	s.cache.InvalidateMutation("redpackets.complete")
	return nil
}

func (s *RedPacketService) Delete(ctx context.Context, uuid string) error {
	if err := s.api.DeleteRedPacket(ctx, uuid); err != nil {
		return err
	}
	s.cache.InvalidateMutation("redpackets.delete")
	return nil
}
