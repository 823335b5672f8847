package services

import (
	"context"
	"fmt"
	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/models"
)

type UserService struct {
	api   *api.Client
	cache *cache.QueryCache
}

func NewUserService(client *api.Client, qc *cache.QueryCache) *UserService {
	return &UserService{
		api:   client,
		cache: qc,
	}
}

func (s *UserService) List(ctx context.Context, f models.UserFilter, force bool) cache.Result[*models.Page[models.User]] {
	return cache.Fetch(ctx, s.cache, cache.TagUsers, f.Params(), force, func(ctx context.Context) (*models.Page[models.User], error) {
		return s.api.ListUsers(ctx, f)
	})
}

func (s *UserService) Get(ctx context.Context, id uint64, force bool) cache.Result[*models.User] {
	params := map[string]string{"id": fmt.Sprint(id)}
	return cache.Fetch(ctx, s.cache, cache.TagUsers, params, force, func(ctx context.Context) (*models.User, error) {
		return s.api.GetUser(ctx, id)
	})
}

func (s *UserService) AdjustBalance(ctx context.Context, req models.AdjustBalanceRequest) error {
	if err := s.api.AdjustBalance(ctx, req); err != nil {
		return err
	}
	s.cache.InvalidateMutation("users.adjust-balance")
	return nil
}

func (s *UserService) SetBanned(ctx context.Context, userId uint64, banned bool, reason string) error {
	req := models.BanRequest{
		UserId: userId,
		Banned: banned,
		Reason: reason,
	}
	if err := s.api.SetBanned(ctx, req); err != nil {
		return err
	}
	s.cache.InvalidateMutation("users.ban")
	return nil
}

func (s *UserService) BatchOperation(ctx context.Context, userIds []uint64, operation string) error {
	req := models.BatchOperationRequest{
		UserIds:   userIds,
		Operation: operation,
	}
	if err := s.api.BatchOperation(ctx, req); err != nil {
		return err
	}
	s.cache.InvalidateMutation("users.batch")
	return nil
}
