package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wedding-registry-backend/internal/model"
)

type MercadoLivreClient interface {
	SearchOrders(ctx context.Context, accessToken, sellerID string) ([]model.MeliOrder, error)
}

type mercadoLivreClientImpl struct {
	httpClient *http.Client
	baseApiURL string
}

func NewMercadoLivreClient(baseApiURL string) MercadoLivreClient {
	return &mercadoLivreClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: baseApiURL,
	}
}

func (c *mercadoLivreClientImpl) SearchOrders(ctx context.Context, accessToken, sellerID string) ([]model.MeliOrder, error) {
	reqURL := fmt.Sprintf("%s/orders/search?seller=%s", c.baseApiURL, url.QueryEscape(sellerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("mercado livre error %d: %s", resp.StatusCode, string(b))
	}

	var result model.MeliOrderSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode mercado livre response: %w", err)
	}

	return result.Results, nil
}
