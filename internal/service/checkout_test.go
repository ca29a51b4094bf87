package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"wedding-registry-backend/internal/client"
	"wedding-registry-backend/internal/dto"
	"wedding-registry-backend/internal/model"
	"wedding-registry-backend/internal/repository"
)

const testSiteURL = "https://example.org"

func newCheckoutTestService(t *testing.T, db *gorm.DB, mpURL string) CheckoutService {
	t.Helper()

	return NewCheckoutService(
		newTestLogger(),
		client.NewMercadoPagoClient(mpURL),
		testSiteURL,
		repository.NewConfigRepository(db),
		repository.NewPresentRepository(db),
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
	)
}

// preferenceRecorder captures the preference request body sent to the
// provider and answers with a fixed preference id.
func preferenceRecorder(t *testing.T, captured *model.PreferenceRequest) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/checkout/preferences", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read preference body: %v", err)
		}
		if err := json.Unmarshal(body, captured); err != nil {
			t.Errorf("decode preference body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "pref-42",
			"init_point": "https://mp.example/init",
			"sandbox_init_point": "https://mp.example/sandbox"
		}`)
	})
	return newFakeProvider(t, mux)
}

func TestCreatePreference(t *testing.T) {
	db := newTestDB(t)
	seedConfig(t, db)

	present := model.Present{Name: "Liquidificador", Description: "220V", Price: 250, Stock: 2}
	if err := db.Create(&present).Error; err != nil {
		t.Fatalf("seed present: %v", err)
	}

	var captured model.PreferenceRequest
	srv := preferenceRecorder(t, &captured)

	svc := newCheckoutTestService(t, db, srv.URL)

	resp, err := svc.CreatePreference(context.Background(), &dto.CreatePreferenceRequest{
		PresentID:     present.ID,
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("CreatePreference: %v", err)
	}

	if resp.ID != "pref-42" {
		t.Errorf("preference id = %q, want pref-42", resp.ID)
	}
	if resp.InitPoint != "https://mp.example/init" {
		t.Errorf("init point = %q", resp.InitPoint)
	}
	if resp.OrderID == 0 {
		t.Fatal("response carries no order id")
	}

	var order model.Order
	if err := db.First(&order, resp.OrderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.Status != model.StatusPending {
		t.Errorf("order status = %q, want pending", order.Status)
	}
	if order.PaymentID != "pref-42" {
		t.Errorf("order payment id = %q, want pref-42", order.PaymentID)
	}

	if captured.ExternalReference != fmt.Sprintf("order-%d", resp.OrderID) {
		t.Errorf("external reference = %q", captured.ExternalReference)
	}
	if len(captured.Items) != 1 {
		t.Fatalf("preference items = %d, want 1", len(captured.Items))
	}
	item := captured.Items[0]
	if item.Title != "Liquidificador" || item.UnitPrice != 250 || item.Quantity != 1 || item.CurrencyID != "BRL" {
		t.Errorf("unexpected preference item: %+v", item)
	}
	wantBack := fmt.Sprintf("%s/presentes/confirmacao?order_id=%d", testSiteURL, resp.OrderID)
	if captured.BackURLs.Success != wantBack {
		t.Errorf("back url = %q, want %q", captured.BackURLs.Success, wantBack)
	}
}

func TestCreatePreferenceOutOfStock(t *testing.T) {
	db := newTestDB(t)
	seedConfig(t, db)

	present := model.Present{Name: "Cafeteira", Price: 300, Stock: 0}
	if err := db.Create(&present).Error; err != nil {
		t.Fatalf("seed present: %v", err)
	}

	svc := newCheckoutTestService(t, db, "http://unused")

	_, err := svc.CreatePreference(context.Background(), &dto.CreatePreferenceRequest{
		PresentID:    present.ID,
		CustomerName: "Ana",
	})
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err = %v, want ErrOutOfStock", err)
	}
}

func TestCreatePreferenceUnknownPresent(t *testing.T) {
	db := newTestDB(t)
	seedConfig(t, db)

	svc := newCheckoutTestService(t, db, "http://unused")

	_, err := svc.CreatePreference(context.Background(), &dto.CreatePreferenceRequest{
		PresentID:    999,
		CustomerName: "Ana",
	})
	if !errors.Is(err, ErrPresentNotFound) {
		t.Fatalf("err = %v, want ErrPresentNotFound", err)
	}
}

func TestCreatePreferenceMissingConfig(t *testing.T) {
	db := newTestDB(t)

	svc := newCheckoutTestService(t, db, "http://unused")

	_, err := svc.CreatePreference(context.Background(), &dto.CreatePreferenceRequest{
		PresentID:    1,
		CustomerName: "Ana",
	})
	if !errors.Is(err, ErrConfigurationMissing) {
		t.Fatalf("err = %v, want ErrConfigurationMissing", err)
	}
}

func TestCreateCartPreferenceSkipsUnknownPresents(t *testing.T) {
	db := newTestDB(t)
	seedConfig(t, db)

	present := model.Present{Name: "Jarra", Price: 60, Stock: 4}
	if err := db.Create(&present).Error; err != nil {
		t.Fatalf("seed present: %v", err)
	}

	var captured model.PreferenceRequest
	srv := preferenceRecorder(t, &captured)

	svc := newCheckoutTestService(t, db, srv.URL)

	resp, err := svc.CreateCartPreference(context.Background(), &dto.CreateCartPreferenceRequest{
		Items: []dto.CartItemRequest{
			{PresentID: present.ID, Quantity: 2},
			{PresentID: 999, Quantity: 1}, // not in the registry
		},
		CustomerName: "Bruno",
	})
	if err != nil {
		t.Fatalf("CreateCartPreference: %v", err)
	}
	if resp.CartID == 0 {
		t.Fatal("response carries no cart id")
	}

	var items []model.CartItem
	if err := db.Where("cart_id = ?", resp.CartID).Find(&items).Error; err != nil {
		t.Fatalf("load cart items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart items = %d, want 1 (unknown present skipped)", len(items))
	}
	if items[0].Quantity != 2 || items[0].Price != 60 {
		t.Errorf("cart item = qty %d price %v, want 2/60", items[0].Quantity, items[0].Price)
	}

	if captured.ExternalReference != fmt.Sprintf("cart-%d", resp.CartID) {
		t.Errorf("external reference = %q", captured.ExternalReference)
	}
	if len(captured.Items) != 1 {
		t.Errorf("preference items = %d, want 1", len(captured.Items))
	}
}

func TestCreateCartPreferenceEmptyAfterSkips(t *testing.T) {
	db := newTestDB(t)
	seedConfig(t, db)

	svc := newCheckoutTestService(t, db, "http://unused")

	_, err := svc.CreateCartPreference(context.Background(), &dto.CreateCartPreferenceRequest{
		Items:        []dto.CartItemRequest{{PresentID: 999, Quantity: 1}},
		CustomerName: "Bruno",
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestCreateCartPreferenceInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	seedConfig(t, db)

	present := model.Present{Name: "Edredom", Price: 200, Stock: 1}
	if err := db.Create(&present).Error; err != nil {
		t.Fatalf("seed present: %v", err)
	}

	svc := newCheckoutTestService(t, db, "http://unused")

	_, err := svc.CreateCartPreference(context.Background(), &dto.CreateCartPreferenceRequest{
		Items:        []dto.CartItemRequest{{PresentID: present.ID, Quantity: 3}},
		CustomerName: "Bruno",
	})
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err = %v, want ErrOutOfStock", err)
	}
}
