package services

import (
	"context"
	"redadmin/internal/api"
	"redadmin/internal/config"
	"redadmin/internal/models"
	"redadmin/internal/store"
)

var log = config.InitLogger()

type AuthService struct {
	api  *api.Client
	auth *store.AuthStore
}

func NewAuthService(client *api.Client, auth *store.AuthStore) *AuthService {
	return &AuthService{
		api:  client,
		auth: auth,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Admin, error) {
	res, err := s.api.Login(ctx, username, password)
	if err != nil {
		log.Error("Login failed: ", err)
		return nil, err
	}
	s.auth.SetAuth(res.Token, res.Admin)
	return &res.Admin, nil
}

func (s *AuthService) Me(ctx context.Context) (*models.Admin, error) {
	return s.api.Me(ctx)
}

func (s *AuthService) Logout() {
	s.auth.ClearAuth()
}

func (s *AuthService) IsAuthenticated() bool {
	return s.auth.IsAuthenticated()
}

func (s *AuthService) Admin() models.Admin {
	return s.auth.Admin()
}
