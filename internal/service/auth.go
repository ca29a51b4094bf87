package service

import (
	"crypto/subtle"

	"wedding-registry-backend/internal/auth"
	"wedding-registry-backend/internal/config"
)

type AuthService interface {
	Login(password string) (string, error)
}

type authServiceImpl struct {
	cfg config.Auth
}

func NewAuthService(cfg config.Auth) AuthService {
	return &authServiceImpl{
		cfg: cfg,
	}
}

func (s *authServiceImpl) Login(password string) (string, error) {
	if s.cfg.AdminPassword == "" || s.cfg.JWTSecret == "" {
		return "", ErrConfigurationMissing
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(s.cfg.JWTSecret)
}
