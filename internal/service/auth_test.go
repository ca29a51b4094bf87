package service

import (
	"errors"
	"testing"

	"wedding-registry-backend/internal/auth"
	"wedding-registry-backend/internal/config"
)

func TestLogin(t *testing.T) {
	svc := NewAuthService(config.Auth{
		AdminPassword: "casamento2026",
		JWTSecret:     "jwt-secret",
	})

	token, err := svc.Login("casamento2026")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := auth.ValidateToken("jwt-secret", token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(config.Auth{
		AdminPassword: "casamento2026",
		JWTSecret:     "jwt-secret",
	})

	if _, err := svc.Login("errada"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnconfigured(t *testing.T) {
	svc := NewAuthService(config.Auth{})

	if _, err := svc.Login("qualquer"); !errors.Is(err, ErrConfigurationMissing) {
		t.Fatalf("err = %v, want ErrConfigurationMissing", err)
	}
}
