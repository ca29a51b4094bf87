package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"wedding-registry-backend/internal/dto"
	"wedding-registry-backend/internal/service"
)

type PresentHandler struct {
	presentService service.PresentService
}

func NewPresentHandler(presentService service.PresentService) *PresentHandler {
	return &PresentHandler{
		presentService: presentService,
	}
}

func (h *PresentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	presents, err := h.presentService.List(ctx)
	if err != nil {
		return writeError(c, err, "Erro ao buscar presentes")
	}

	return c.JSON(http.StatusOK, presents)
}

func (h *PresentHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	presentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	present, err := h.presentService.Get(ctx, uint(presentID))
	if err != nil {
		return writeError(c, err, "Presente não encontrado")
	}

	return c.JSON(http.StatusOK, present)
}

func (h *PresentHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PresentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	present, err := h.presentService.Create(ctx, &req)
	if err != nil {
		return writeError(c, err, "Erro ao criar presente")
	}

	return c.JSON(http.StatusCreated, present)
}

func (h *PresentHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	presentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	var req dto.PresentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	present, err := h.presentService.Update(ctx, uint(presentID), &req)
	if err != nil {
		return writeError(c, err, "Erro ao atualizar presente")
	}

	return c.JSON(http.StatusOK, present)
}

func (h *PresentHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	presentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	if err := h.presentService.Delete(ctx, uint(presentID)); err != nil {
		return writeError(c, err, "Erro ao remover presente")
	}

	return c.NoContent(http.StatusNoContent)
}
