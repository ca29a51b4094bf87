package repository

import (
	"context"
	"testing"

	"wedding-registry-backend/internal/model"
)

func TestSaleFindByPaymentID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	sale, err := repo.FindByPaymentID(ctx, "missing")
	if err != nil {
		t.Fatalf("FindByPaymentID: %v", err)
	}
	if sale != nil {
		t.Fatalf("sale = %+v, want nil for unknown payment id", sale)
	}

	err = repo.Create(ctx, db, &model.Sale{
		PresentID: 1,
		PaymentID: "pay-1",
		Status:    model.StatusPaid,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sale, err = repo.FindByPaymentID(ctx, "pay-1")
	if err != nil {
		t.Fatalf("FindByPaymentID: %v", err)
	}
	if sale == nil || sale.PaymentID != "pay-1" {
		t.Fatalf("sale = %+v, want payment id pay-1", sale)
	}
}

func TestSaleExistsByPaymentID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByPaymentID(ctx, "pay-2")
	if err != nil {
		t.Fatalf("ExistsByPaymentID: %v", err)
	}
	if exists {
		t.Fatal("exists = true before any sale was recorded")
	}

	err = repo.Create(ctx, db, &model.Sale{PresentID: 1, PaymentID: "pay-2", Status: model.StatusPending})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err = repo.ExistsByPaymentID(ctx, "pay-2")
	if err != nil {
		t.Fatalf("ExistsByPaymentID: %v", err)
	}
	if !exists {
		t.Fatal("exists = false after the sale was recorded")
	}
}

func TestSaleListOrdersByPaymentID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	for _, id := range []string{"30", "10", "20"} {
		err := repo.Create(ctx, db, &model.Sale{PresentID: 1, PaymentID: id, Status: model.StatusPaid})
		if err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	sales, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sales) != 3 {
		t.Fatalf("sales = %d, want 3", len(sales))
	}
	for i, want := range []string{"10", "20", "30"} {
		if sales[i].PaymentID != want {
			t.Errorf("sales[%d].PaymentID = %q, want %q", i, sales[i].PaymentID, want)
		}
	}
}

func TestSaleUpdateStatusByPaymentID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.Create(ctx, db, &model.Sale{PresentID: uint(i + 1), PaymentID: "shared", Status: model.StatusPending})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := repo.UpdateStatusByPaymentID(ctx, db, "shared", model.StatusPaid); err != nil {
		t.Fatalf("UpdateStatusByPaymentID: %v", err)
	}

	var count int64
	err := db.Model(&model.Sale{}).
		Where("payment_id = ? AND status = ?", "shared", model.StatusPaid).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("paid rows = %d, want both rows updated", count)
	}
}
