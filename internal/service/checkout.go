package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wedding-registry-backend/internal/client"
	"wedding-registry-backend/internal/dto"
	"wedding-registry-backend/internal/model"
	"wedding-registry-backend/internal/repository"
)

const defaultSiteTitle = "Casamento"

// CheckoutService creates payment preferences for single presents and carts,
// and serves the read-only status lookups used by the confirmation page.
type CheckoutService interface {
	CreatePreference(ctx context.Context, req *dto.CreatePreferenceRequest) (*dto.PreferenceResponse, error)
	CreateCartPreference(ctx context.Context, req *dto.CreateCartPreferenceRequest) (*dto.PreferenceResponse, error)
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
	GetCart(ctx context.Context, cartID uint) (*model.Cart, error)
}

type checkoutServiceImpl struct {
	log         *logrus.Logger
	mpClient    client.MercadoPagoClient
	siteURL     string
	configRepo  repository.ConfigRepository
	presentRepo repository.PresentRepository
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
}

func NewCheckoutService(
	log *logrus.Logger,
	mpClient client.MercadoPagoClient,
	siteURL string,
	configRepo repository.ConfigRepository,
	presentRepo repository.PresentRepository,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		log:         log,
		mpClient:    mpClient,
		siteURL:     siteURL,
		configRepo:  configRepo,
		presentRepo: presentRepo,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
	}
}

func (s *checkoutServiceImpl) CreatePreference(ctx context.Context, req *dto.CreatePreferenceRequest) (*dto.PreferenceResponse, error) {
	cfg, err := s.configRepo.GetFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mercado pago config: %w", err)
	}
	if cfg == nil || cfg.MercadoPagoAccessToken == "" {
		return nil, ErrConfigurationMissing
	}

	present, err := s.presentRepo.FindByID(ctx, req.PresentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPresentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find present: %w", err)
	}
	if present.Stock <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrOutOfStock, present.Name)
	}

	siteTitle := cfg.SiteTitle
	if siteTitle == "" {
		siteTitle = defaultSiteTitle
	}

	order := &model.Order{
		PresentID:     present.ID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        model.StatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	pref := &model.PreferenceRequest{
		Items: []model.PreferenceItem{
			{
				ID:          fmt.Sprintf("present-%d", present.ID),
				Title:       present.Name,
				Description: itemDescription(present, siteTitle),
				Quantity:    1,
				CurrencyID:  "BRL",
				UnitPrice:   present.Price,
			},
		},
		Payer:               preferencePayer(req.CustomerName, req.CustomerEmail),
		ExternalReference:   fmt.Sprintf("order-%d", order.ID),
		BackURLs:            s.confirmationURLs(fmt.Sprintf("order_id=%d", order.ID)),
		PaymentMethods:      model.PreferencePaymentMethods{Installments: 12},
		NotificationURL:     cfg.MercadoPagoNotificationURL,
		AutoReturn:          "approved",
		StatementDescriptor: siteTitle,
		Metadata: map[string]any{
			"presentId": present.ID,
			"quantity":  1,
		},
	}

	resp, err := s.mpClient.CreatePreference(ctx, cfg.MercadoPagoAccessToken, pref)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	if err := s.orderRepo.UpdatePaymentID(ctx, order.ID, resp.ID); err != nil {
		return nil, fmt.Errorf("store preference id: %w", err)
	}

	return &dto.PreferenceResponse{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
		OrderID:          order.ID,
	}, nil
}

func (s *checkoutServiceImpl) CreateCartPreference(ctx context.Context, req *dto.CreateCartPreferenceRequest) (*dto.PreferenceResponse, error) {
	cfg, err := s.configRepo.GetFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mercado pago config: %w", err)
	}
	if cfg == nil || cfg.MercadoPagoAccessToken == "" {
		return nil, ErrConfigurationMissing
	}

	siteTitle := cfg.SiteTitle
	if siteTitle == "" {
		siteTitle = defaultSiteTitle
	}

	cart := &model.Cart{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        model.StatusPending,
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	total := decimal.Zero
	items := make([]model.PreferenceItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		quantity := reqItem.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		present, err := s.presentRepo.FindByID(ctx, reqItem.PresentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown presents are skipped rather than failing the cart.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("find present: %w", err)
		}
		if present.Stock < quantity {
			return nil, fmt.Errorf("%w: %s", ErrOutOfStock, present.Name)
		}

		err = s.cartRepo.CreateItem(ctx, &model.CartItem{
			CartID:    cart.ID,
			PresentID: present.ID,
			Quantity:  quantity,
			Price:     present.Price,
		})
		if err != nil {
			return nil, fmt.Errorf("create cart item: %w", err)
		}

		total = total.Add(decimal.NewFromFloat(present.Price).Mul(decimal.NewFromInt(int64(quantity))))
		items = append(items, model.PreferenceItem{
			ID:          fmt.Sprintf("present-%d", present.ID),
			Title:       present.Name,
			Description: itemDescription(present, siteTitle),
			Quantity:    quantity,
			CurrencyID:  "BRL",
			UnitPrice:   present.Price,
		})
	}

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	pref := &model.PreferenceRequest{
		Items:               items,
		Payer:               preferencePayer(req.CustomerName, req.CustomerEmail),
		ExternalReference:   fmt.Sprintf("cart-%d", cart.ID),
		BackURLs:            s.confirmationURLs(fmt.Sprintf("cart_id=%d", cart.ID)),
		PaymentMethods:      model.PreferencePaymentMethods{Installments: 12},
		NotificationURL:     cfg.MercadoPagoNotificationURL,
		AutoReturn:          "approved",
		StatementDescriptor: siteTitle,
	}

	resp, err := s.mpClient.CreatePreference(ctx, cfg.MercadoPagoAccessToken, pref)
	if err != nil {
		return nil, fmt.Errorf("create cart preference: %w", err)
	}

	if err := s.cartRepo.UpdatePaymentID(ctx, cart.ID, resp.ID); err != nil {
		return nil, fmt.Errorf("store preference id: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"cartId": cart.ID,
		"items":  len(items),
		"total":  total.StringFixed(2),
	}).Info("cart preference created")

	return &dto.PreferenceResponse{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
		CartID:           cart.ID,
	}, nil
}

func (s *checkoutServiceImpl) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	return s.orderRepo.FindByID(ctx, orderID)
}

func (s *checkoutServiceImpl) GetCart(ctx context.Context, cartID uint) (*model.Cart, error) {
	return s.cartRepo.FindByID(ctx, cartID)
}

func (s *checkoutServiceImpl) confirmationURLs(query string) model.PreferenceBackURLs {
	url := fmt.Sprintf("%s/presentes/confirmacao?%s", s.siteURL, query)
	return model.PreferenceBackURLs{
		Success: url,
		Failure: url,
		Pending: url,
	}
}

func itemDescription(present *model.Present, siteTitle string) string {
	if present.Description != "" {
		return present.Description
	}
	return fmt.Sprintf("Presente para %s", siteTitle)
}

func preferencePayer(name, email string) model.PreferencePayer {
	if email == "" {
		email = "cliente@exemplo.com"
	}
	return model.PreferencePayer{
		Name:  name,
		Email: email,
	}
}
