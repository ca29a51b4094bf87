package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"wedding-registry-backend/internal/dto"
	"wedding-registry-backend/internal/model"
	"wedding-registry-backend/internal/service"
)

type MercadoPagoHandler struct {
	reconcileService service.ReconcileService
	webhookService   service.WebhookService
	checkoutService  service.CheckoutService
}

func NewMercadoPagoHandler(
	reconcileService service.ReconcileService,
	webhookService service.WebhookService,
	checkoutService service.CheckoutService,
) *MercadoPagoHandler {
	return &MercadoPagoHandler{
		reconcileService: reconcileService,
		webhookService:   webhookService,
		checkoutService:  checkoutService,
	}
}

func (h *MercadoPagoHandler) SyncPayments(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.reconcileService.SyncPayments(ctx)
	if err != nil {
		return writeError(c, err, "Erro ao buscar pagamentos")
	}

	return c.JSON(http.StatusOK, dto.SyncResponse{
		Message: "Pagamentos sincronizados",
		Count:   count,
	})
}

func (h *MercadoPagoHandler) SyncMerchantOrders(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.reconcileService.SyncMerchantOrders(ctx)
	if err != nil {
		return writeError(c, err, "Erro ao buscar pagamentos")
	}

	return c.JSON(http.StatusOK, dto.SyncResponse{
		Message: "Pagamentos sincronizados",
		Count:   count,
	})
}

func (h *MercadoPagoHandler) Webhook(c echo.Context) error {
	ctx := c.Request().Context()

	signature := c.Request().Header.Get("x-signature")
	requestID := c.Request().Header.Get("x-request-id")
	dataID := c.QueryParam("data.id")

	if err := h.webhookService.VerifySignature(signature, requestID, dataID); err != nil {
		if errors.Is(err, service.ErrMissingWebhookData) {
			return c.String(http.StatusBadRequest, "Dados obrigatórios ausentes")
		}
		return c.String(http.StatusUnauthorized, "Assinatura inválida")
	}

	var event model.WebhookEvent
	if err := c.Bind(&event); err != nil {
		return c.String(http.StatusBadRequest, "Payload inválido")
	}

	if err := h.webhookService.ProcessEvent(ctx, &event, dataID); err != nil {
		return writeError(c, err, "Erro ao processar notificação")
	}

	return c.String(http.StatusOK, "OK")
}

func (h *MercadoPagoHandler) CreatePreference(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "ID do presente e nome do cliente são obrigatórios")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.checkoutService.CreatePreference(ctx, &req)
	if err != nil {
		return writeError(c, err, "Erro ao processar pagamento")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *MercadoPagoHandler) CreateCartPreference(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateCartPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Lista de presentes e nome do cliente são obrigatórios")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.checkoutService.CreateCartPreference(ctx, &req)
	if err != nil {
		return writeError(c, err, "Erro ao processar pagamento do carrinho")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *MercadoPagoHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	order, err := h.checkoutService.GetOrder(ctx, uint(orderID))
	if err != nil {
		return writeError(c, err, "Pedido não encontrado")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *MercadoPagoHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	cart, err := h.checkoutService.GetCart(ctx, uint(cartID))
	if err != nil {
		return writeError(c, err, "Carrinho não encontrado")
	}

	return c.JSON(http.StatusOK, cart)
}
