package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wedding-registry-backend/internal/model"
)

type SaleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, sale *model.Sale) error
	FindByPaymentID(ctx context.Context, paymentID string) (*model.Sale, error)
	ExistsByPaymentID(ctx context.Context, paymentID string) (bool, error)
	UpdateFields(ctx context.Context, saleID uint, fields map[string]interface{}) error
	UpdateStatusByPaymentID(ctx context.Context, tx *gorm.DB, paymentID, status string) error
	List(ctx context.Context) ([]*model.Sale, error)
}

type saleRepoImpl struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepoImpl{
		db: db,
	}
}

func (r *saleRepoImpl) Create(ctx context.Context, tx *gorm.DB, sale *model.Sale) error {
	return tx.WithContext(ctx).Create(sale).Error
}

// FindByPaymentID returns (nil, nil) when no sale has been recorded for the
// payment, so callers can branch between insert and update.
func (r *saleRepoImpl) FindByPaymentID(ctx context.Context, paymentID string) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		First(&sale).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

func (r *saleRepoImpl) ExistsByPaymentID(ctx context.Context, paymentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("payment_id = ?", paymentID).
		Count(&count).Error

	return count > 0, err
}

func (r *saleRepoImpl) UpdateFields(ctx context.Context, saleID uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("id = ?", saleID).
		Updates(fields).Error
}

func (r *saleRepoImpl) UpdateStatusByPaymentID(ctx context.Context, tx *gorm.DB, paymentID, status string) error {
	return tx.WithContext(ctx).Model(&model.Sale{}).
		Where("payment_id = ?", paymentID).
		Update("status", status).Error
}

func (r *saleRepoImpl) List(ctx context.Context) ([]*model.Sale, error) {
	var sales []*model.Sale
	err := r.db.WithContext(ctx).
		Order("payment_id asc").
		Find(&sales).Error

	if err != nil {
		return nil, err
	}

	return sales, nil
}
