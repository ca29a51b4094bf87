package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wedding-registry-backend/internal/dto"
	"wedding-registry-backend/internal/service"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

func (h *ContentHandler) GetSection(c echo.Context) error {
	ctx := c.Request().Context()

	content, err := h.contentService.GetSection(ctx, c.Param("section"))
	if err != nil {
		return writeError(c, err, "Erro no servidor")
	}

	return c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) UpdateSection(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	content, err := h.contentService.UpdateSection(ctx, c.Param("section"), req.Content)
	if err != nil {
		return writeError(c, err, "Erro ao atualizar conteúdo")
	}

	return c.JSON(http.StatusOK, content)
}
