package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"wedding-registry-backend/internal/model"
)

type MercadoPagoClient interface {
	SearchPayments(ctx context.Context, accessToken string) ([]model.Payment, error)
	GetPayment(ctx context.Context, accessToken, paymentID string) (*model.Payment, error)
	SearchMerchantOrders(ctx context.Context, accessToken string) ([]model.MerchantOrder, error)
	CreatePreference(ctx context.Context, accessToken string, pref *model.PreferenceRequest) (*model.PreferenceResponse, error)
}

type mercadoPagoClientImpl struct {
	httpClient *http.Client
	baseApiURL string
}

func NewMercadoPagoClient(baseApiURL string) MercadoPagoClient {
	return &mercadoPagoClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: baseApiURL,
	}
}

func (c *mercadoPagoClientImpl) SearchPayments(ctx context.Context, accessToken string) ([]model.Payment, error) {
	var result model.PaymentSearchResult
	if err := c.get(ctx, accessToken, "/v1/payments/search", &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *mercadoPagoClientImpl) GetPayment(ctx context.Context, accessToken, paymentID string) (*model.Payment, error) {
	var payment model.Payment
	if err := c.get(ctx, accessToken, "/v1/payments/"+paymentID, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *mercadoPagoClientImpl) SearchMerchantOrders(ctx context.Context, accessToken string) ([]model.MerchantOrder, error) {
	var result model.MerchantOrderSearchResult
	if err := c.get(ctx, accessToken, "/merchant_orders/search", &result); err != nil {
		return nil, err
	}
	return result.Elements, nil
}

func (c *mercadoPagoClientImpl) CreatePreference(ctx context.Context, accessToken string, pref *model.PreferenceRequest) (*model.PreferenceResponse, error) {
	body, err := json.Marshal(pref)
	if err != nil {
		return nil, fmt.Errorf("marshal preference payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/checkout/preferences",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("mercado pago error %d: %s", resp.StatusCode, string(b))
	}

	var result model.PreferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode mercado pago response: %w", err)
	}

	return &result, nil
}

func (c *mercadoPagoClientImpl) get(ctx context.Context, accessToken, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseApiURL+path, nil)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mercado pago error %d: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode mercado pago response: %w", err)
	}

	return nil
}
