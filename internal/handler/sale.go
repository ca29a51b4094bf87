package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wedding-registry-backend/internal/service"
)

type SaleHandler struct {
	reconcileService service.ReconcileService
}

func NewSaleHandler(reconcileService service.ReconcileService) *SaleHandler {
	return &SaleHandler{
		reconcileService: reconcileService,
	}
}

func (h *SaleHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	sales, err := h.reconcileService.ListSales(ctx)
	if err != nil {
		return writeError(c, err, "Erro ao buscar vendas")
	}

	return c.JSON(http.StatusOK, sales)
}
