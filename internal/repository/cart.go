package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wedding-registry-backend/internal/model"
)

type CartRepository interface {
	Create(ctx context.Context, cart *model.Cart) error
	CreateItem(ctx context.Context, item *model.CartItem) error
	FindByID(ctx context.Context, cartID uint) (*model.Cart, error)
	UpdatePaymentID(ctx context.Context, cartID uint, paymentID string) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, cartID uint, status string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Create(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepoImpl) CreateItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) FindByID(ctx context.Context, cartID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Present").
		Where("id = ?", cartID).
		First(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepoImpl) UpdatePaymentID(ctx context.Context, cartID uint, paymentID string) error {
	return r.db.WithContext(ctx).Model(&model.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"payment_id": paymentID,
			"updated_at": time.Now(),
		}).Error
}

func (r *cartRepoImpl) UpdateStatus(ctx context.Context, tx *gorm.DB, cartID uint, status string) error {
	result := tx.WithContext(ctx).Model(&model.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
