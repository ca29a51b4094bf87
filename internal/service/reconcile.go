package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wedding-registry-backend/internal/client"
	"wedding-registry-backend/internal/config"
	"wedding-registry-backend/internal/model"
	"wedding-registry-backend/internal/repository"
)

// fallbackPresentID is recorded when a payment carries no parseable present
// reference.
const fallbackPresentID = 1

// ReconcileService pulls payment records from the providers and aligns the
// Sale ledger with them. Each pass is stateless; every row write is an
// idempotent upsert keyed by the provider payment id, so a partially failed
// pass is safe to re-run.
type ReconcileService interface {
	SyncPayments(ctx context.Context) (int, error)
	SyncMerchantOrders(ctx context.Context) (int, error)
	SyncMercadoLivreOrders(ctx context.Context) (int, error)
	ListSales(ctx context.Context) ([]*model.Sale, error)
}

type reconcileServiceImpl struct {
	db         *gorm.DB
	log        *logrus.Logger
	mpClient   client.MercadoPagoClient
	meliClient client.MercadoLivreClient
	meliCfg    config.MercadoLivre
	configRepo repository.ConfigRepository
	saleRepo   repository.SaleRepository
}

func NewReconcileService(
	db *gorm.DB,
	log *logrus.Logger,
	mpClient client.MercadoPagoClient,
	meliClient client.MercadoLivreClient,
	meliCfg config.MercadoLivre,
	configRepo repository.ConfigRepository,
	saleRepo repository.SaleRepository,
) ReconcileService {
	return &reconcileServiceImpl{
		db:         db,
		log:        log,
		mpClient:   mpClient,
		meliClient: meliClient,
		meliCfg:    meliCfg,
		configRepo: configRepo,
		saleRepo:   saleRepo,
	}
}

func (s *reconcileServiceImpl) accessToken(ctx context.Context) (string, error) {
	cfg, err := s.configRepo.GetFirst(ctx)
	if err != nil {
		return "", fmt.Errorf("load mercado pago config: %w", err)
	}
	if cfg == nil || cfg.MercadoPagoAccessToken == "" {
		return "", ErrConfigurationMissing
	}
	return cfg.MercadoPagoAccessToken, nil
}

func (s *reconcileServiceImpl) SyncPayments(ctx context.Context) (int, error) {
	accessToken, err := s.accessToken(ctx)
	if err != nil {
		return 0, err
	}

	payments, err := s.mpClient.SearchPayments(ctx, accessToken)
	if err != nil {
		return 0, fmt.Errorf("search payments: %w", err)
	}

	for i := range payments {
		if err := s.upsertPaymentSale(ctx, &payments[i]); err != nil {
			return 0, err
		}
	}

	s.log.WithField("count", len(payments)).Info("mercado pago payments synchronized")
	return len(payments), nil
}

func (s *reconcileServiceImpl) SyncMerchantOrders(ctx context.Context) (int, error) {
	accessToken, err := s.accessToken(ctx)
	if err != nil {
		return 0, err
	}

	orders, err := s.mpClient.SearchMerchantOrders(ctx, accessToken)
	if err != nil {
		return 0, fmt.Errorf("search merchant orders: %w", err)
	}

	count := 0
	for _, order := range orders {
		for _, payment := range order.Payments {
			// Merchant-order entries only carry id and status; the full
			// record comes from the per-payment detail lookup.
			detail, err := s.mpClient.GetPayment(ctx, accessToken, payment.ID.String())
			if err != nil {
				return 0, fmt.Errorf("get payment %s: %w", payment.ID.String(), err)
			}
			if err := s.upsertPaymentSale(ctx, detail); err != nil {
				return 0, err
			}
			count++
		}
	}

	s.log.WithField("count", count).Info("mercado pago merchant orders synchronized")
	return count, nil
}

// upsertPaymentSale applies the idempotency rule shared by every Mercado
// Pago pull variant: insert a Sale for an unseen payment id, otherwise
// refresh only status and customer fields.
func (s *reconcileServiceImpl) upsertPaymentSale(ctx context.Context, payment *model.Payment) error {
	paymentID := payment.ID.String()

	method := payment.PaymentMethodID
	if method == "" {
		method = payment.PaymentTypeID
	}
	if method == "" {
		method = "unknown"
	}

	customerName := payment.Payer.FirstName
	if customerName == "" {
		customerName = payment.Payer.Email
	}
	if customerName == "" {
		customerName = "Mercado Pago"
	}

	status := MapPaymentStatus(payment.Status)
	presentID := presentIDFromPayment(payment)
	quantity := quantityFromPayment(payment)

	existing, err := s.saleRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("find sale by payment id: %w", err)
	}

	if existing == nil {
		return s.saleRepo.Create(ctx, s.db, &model.Sale{
			PresentID:     presentID,
			CustomerName:  customerName,
			CustomerEmail: payment.Payer.Email,
			Amount:        payment.TransactionAmount,
			Quantity:      quantity,
			PaymentMethod: method,
			PaymentID:     paymentID,
			Status:        status,
		})
	}

	return s.saleRepo.UpdateFields(ctx, existing.ID, map[string]interface{}{
		"status":         status,
		"customer_name":  customerName,
		"customer_email": payment.Payer.Email,
	})
}

func (s *reconcileServiceImpl) SyncMercadoLivreOrders(ctx context.Context) (int, error) {
	if s.meliCfg.AccessToken == "" || s.meliCfg.UserID == "" {
		return 0, ErrConfigurationMissing
	}

	orders, err := s.meliClient.SearchOrders(ctx, s.meliCfg.AccessToken, s.meliCfg.UserID)
	if err != nil {
		return 0, fmt.Errorf("search mercado livre orders: %w", err)
	}

	for _, order := range orders {
		orderID := order.ID.String()

		quantity := 0
		for _, item := range order.OrderItems {
			quantity += item.Quantity
		}
		if quantity == 0 {
			quantity = 1
		}

		presentID := uint(fallbackPresentID)
		if len(order.OrderItems) > 0 {
			if id, err := strconv.Atoi(order.OrderItems[0].Item.ID); err == nil && id > 0 {
				presentID = uint(id)
			}
		}

		customerName := order.Buyer.Nickname
		if customerName == "" {
			customerName = "Mercado Livre"
		}

		// Mercado Livre already reports paid/cancelled directly, so its
		// status is persisted untranslated.
		status := order.Status
		if status == "" {
			status = model.StatusPending
		}

		existing, err := s.saleRepo.FindByPaymentID(ctx, orderID)
		if err != nil {
			return 0, fmt.Errorf("find sale by payment id: %w", err)
		}

		if existing == nil {
			err = s.saleRepo.Create(ctx, s.db, &model.Sale{
				PresentID:     presentID,
				CustomerName:  customerName,
				CustomerEmail: order.Buyer.Email,
				Amount:        order.TotalAmount,
				Quantity:      quantity,
				PaymentMethod: "mercadolivre",
				PaymentID:     orderID,
				Status:        status,
			})
			if err != nil {
				return 0, err
			}
		} else if existing.Status != status {
			err = s.saleRepo.UpdateFields(ctx, existing.ID, map[string]interface{}{
				"status": status,
			})
			if err != nil {
				return 0, err
			}
		}
	}

	s.log.WithField("count", len(orders)).Info("mercado livre orders synchronized")
	return len(orders), nil
}

// ListSales returns the ledger ordered by ascending payment id.
func (s *reconcileServiceImpl) ListSales(ctx context.Context) ([]*model.Sale, error) {
	return s.saleRepo.List(ctx)
}

func presentIDFromPayment(payment *model.Payment) uint {
	if id, ok := rawToInt(payment.Metadata.PresentID); ok && id > 0 {
		return uint(id)
	}
	if id, ok := rawToInt(payment.Metadata.PresentIDSnake); ok && id > 0 {
		return uint(id)
	}
	if len(payment.AdditionalInfo.Items) > 0 {
		if id, err := strconv.Atoi(payment.AdditionalInfo.Items[0].ID); err == nil && id > 0 {
			return uint(id)
		}
	}
	return fallbackPresentID
}

func quantityFromPayment(payment *model.Payment) int {
	if qty, ok := rawToInt(payment.Metadata.Quantity); ok && qty > 0 {
		return qty
	}
	return 1
}

// rawToInt parses a metadata value that the provider may echo back either as
// a JSON number or as a quoted string.
func rawToInt(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}

	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}

	return 0, false
}
