package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wedding-registry-backend/internal/client"
	"wedding-registry-backend/internal/model"
	"wedding-registry-backend/internal/repository"
)

// WebhookService handles provider-pushed payment notifications: signature
// verification first, then order/cart settlement.
type WebhookService interface {
	VerifySignature(signatureHeader, requestID, dataID string) error
	ProcessEvent(ctx context.Context, event *model.WebhookEvent, dataID string) error
}

type webhookServiceImpl struct {
	db            *gorm.DB
	log           *logrus.Logger
	mpClient      client.MercadoPagoClient
	webhookSecret string
	configRepo    repository.ConfigRepository
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartRepository
	presentRepo   repository.PresentRepository
	saleRepo      repository.SaleRepository
}

func NewWebhookService(
	db *gorm.DB,
	log *logrus.Logger,
	mpClient client.MercadoPagoClient,
	webhookSecret string,
	configRepo repository.ConfigRepository,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	presentRepo repository.PresentRepository,
	saleRepo repository.SaleRepository,
) WebhookService {
	return &webhookServiceImpl{
		db:            db,
		log:           log,
		mpClient:      mpClient,
		webhookSecret: webhookSecret,
		configRepo:    configRepo,
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		presentRepo:   presentRepo,
		saleRepo:      saleRepo,
	}
}

// VerifySignature checks the x-signature header against an HMAC-SHA256 of
// the canonical manifest `id:<dataId>;request-id:<requestId>;ts:<ts>;`.
func (s *webhookServiceImpl) VerifySignature(signatureHeader, requestID, dataID string) error {
	if signatureHeader == "" || requestID == "" || dataID == "" || s.webhookSecret == "" {
		return ErrMissingWebhookData
	}

	var ts, receivedHex string
	for _, part := range strings.Split(signatureHeader, ",") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, "ts="); ok {
			ts = v
		}
		if v, ok := strings.CutPrefix(part, "v1="); ok {
			receivedHex = v
		}
	}
	if ts == "" || receivedHex == "" {
		return ErrSignatureInvalid
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", strings.ToLower(dataID), requestID, ts)

	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write([]byte(manifest))
	computed := mac.Sum(nil)

	received, err := hex.DecodeString(receivedHex)
	if err != nil {
		return ErrSignatureInvalid
	}

	// hmac.Equal compares in constant time.
	if len(received) != len(computed) || !hmac.Equal(received, computed) {
		return ErrSignatureInvalid
	}

	return nil
}

func (s *webhookServiceImpl) ProcessEvent(ctx context.Context, event *model.WebhookEvent, dataID string) error {
	if event.Type != "payment" {
		return nil
	}

	paymentID := event.Data.ID.String()
	if paymentID == "" {
		paymentID = dataID
	}

	cfg, err := s.configRepo.GetFirst(ctx)
	if err != nil {
		return fmt.Errorf("load mercado pago config: %w", err)
	}
	if cfg == nil || cfg.MercadoPagoAccessToken == "" {
		return ErrConfigurationMissing
	}

	payment, err := s.mpClient.GetPayment(ctx, cfg.MercadoPagoAccessToken, paymentID)
	if err != nil {
		return fmt.Errorf("get payment %s: %w", paymentID, err)
	}

	ref := payment.ExternalReference
	switch {
	case strings.HasPrefix(ref, "order-"):
		orderID, err := strconv.Atoi(strings.TrimPrefix(ref, "order-"))
		if err != nil {
			return fmt.Errorf("invalid order reference %q", ref)
		}
		return s.settleOrder(ctx, uint(orderID), payment)
	case strings.HasPrefix(ref, "cart-"):
		cartID, err := strconv.Atoi(strings.TrimPrefix(ref, "cart-"))
		if err != nil {
			return fmt.Errorf("invalid cart reference %q", ref)
		}
		return s.settleCart(ctx, uint(cartID), payment)
	}

	s.log.WithField("external_reference", ref).Warn("webhook payment without known reference")
	return nil
}

func (s *webhookServiceImpl) settleOrder(ctx context.Context, orderID uint, payment *model.Payment) error {
	paymentID := payment.ID.String()
	approved := payment.Status == "approved"

	newStatus := payment.Status
	if approved {
		newStatus = model.StatusPaid
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("find order %d: %w", orderID, err)
	}

	// A Sale already recorded for this payment id means the provider
	// redelivered the event: refresh statuses, touch nothing else.
	recorded, err := s.saleRepo.ExistsByPaymentID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("check sale by payment id: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.UpdateStatus(ctx, tx, orderID, newStatus); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if !approved {
			return nil
		}
		if recorded {
			return s.saleRepo.UpdateStatusByPaymentID(ctx, tx, paymentID, model.StatusPaid)
		}
		if order.Present == nil {
			return nil
		}

		if err := s.presentRepo.DecrementStock(ctx, tx, order.PresentID, 1); err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}

		return s.saleRepo.Create(ctx, tx, &model.Sale{
			PresentID:     order.PresentID,
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
			Amount:        order.Present.Price,
			Quantity:      1,
			PaymentMethod: "mercadopago",
			PaymentID:     paymentID,
			Status:        model.StatusPaid,
			Notes:         fmt.Sprintf("Pagamento aprovado via Mercado Pago. ID do pedido: %d", orderID),
		})
	})
}

func (s *webhookServiceImpl) settleCart(ctx context.Context, cartID uint, payment *model.Payment) error {
	paymentID := payment.ID.String()
	approved := payment.Status == "approved"

	newStatus := payment.Status
	if approved {
		newStatus = model.StatusPaid
	}

	cart, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return fmt.Errorf("find cart %d: %w", cartID, err)
	}

	recorded, err := s.saleRepo.ExistsByPaymentID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("check sale by payment id: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.cartRepo.UpdateStatus(ctx, tx, cartID, newStatus); err != nil {
			return fmt.Errorf("update cart status: %w", err)
		}

		if !approved {
			return nil
		}
		if recorded {
			return s.saleRepo.UpdateStatusByPaymentID(ctx, tx, paymentID, model.StatusPaid)
		}

		for _, item := range cart.Items {
			if err := s.presentRepo.DecrementStock(ctx, tx, item.PresentID, item.Quantity); err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}

			amount := decimal.NewFromFloat(item.Price).
				Mul(decimal.NewFromInt(int64(item.Quantity))).
				InexactFloat64()

			err := s.saleRepo.Create(ctx, tx, &model.Sale{
				PresentID:     item.PresentID,
				CustomerName:  cart.CustomerName,
				CustomerEmail: cart.CustomerEmail,
				Amount:        amount,
				Quantity:      item.Quantity,
				PaymentMethod: "mercadopago",
				PaymentID:     paymentID,
				Status:        model.StatusPaid,
				Notes:         fmt.Sprintf("Pagamento aprovado via Mercado Pago. ID do carrinho: %d", cartID),
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
}
