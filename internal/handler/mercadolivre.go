package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wedding-registry-backend/internal/dto"
	"wedding-registry-backend/internal/service"
)

type MercadoLivreHandler struct {
	reconcileService service.ReconcileService
}

func NewMercadoLivreHandler(reconcileService service.ReconcileService) *MercadoLivreHandler {
	return &MercadoLivreHandler{
		reconcileService: reconcileService,
	}
}

func (h *MercadoLivreHandler) SyncOrders(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.reconcileService.SyncMercadoLivreOrders(ctx)
	if err != nil {
		return writeError(c, err, "Erro ao buscar pedidos")
	}

	return c.JSON(http.StatusOK, dto.SyncResponse{
		Message: "Pedidos sincronizados",
		Count:   count,
	})
}
