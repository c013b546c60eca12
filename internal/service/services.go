package service

import (
	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Profile *ProfileService
	Match   *MatchService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, cfg),
		Profile: NewProfileService(repos.User),
		Match:   NewMatchService(repos.User),
	}
}
