package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wedding-registry-backend/internal/dto"
	"wedding-registry-backend/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		return writeError(c, err, "Falha na autenticação")
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
