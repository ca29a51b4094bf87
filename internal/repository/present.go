package repository

import (
	"context"

	"gorm.io/gorm"

	"wedding-registry-backend/internal/model"
)

type PresentRepository interface {
	Create(ctx context.Context, present *model.Present) error
	FindByID(ctx context.Context, presentID uint) (*model.Present, error)
	List(ctx context.Context) ([]*model.Present, error)
	Update(ctx context.Context, present *model.Present) error
	Delete(ctx context.Context, presentID uint) error
	DecrementStock(ctx context.Context, tx *gorm.DB, presentID uint, quantity int) error
}

type presentRepoImpl struct {
	db *gorm.DB
}

func NewPresentRepository(db *gorm.DB) PresentRepository {
	return &presentRepoImpl{
		db: db,
	}
}

func (r *presentRepoImpl) Create(ctx context.Context, present *model.Present) error {
	return r.db.WithContext(ctx).Create(present).Error
}

func (r *presentRepoImpl) FindByID(ctx context.Context, presentID uint) (*model.Present, error) {
	var present model.Present
	err := r.db.WithContext(ctx).
		Where("id = ?", presentID).
		First(&present).Error

	if err != nil {
		return nil, err
	}

	return &present, nil
}

func (r *presentRepoImpl) List(ctx context.Context) ([]*model.Present, error) {
	var presents []*model.Present
	err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&presents).Error

	if err != nil {
		return nil, err
	}

	return presents, nil
}

func (r *presentRepoImpl) Update(ctx context.Context, present *model.Present) error {
	return r.db.WithContext(ctx).Save(present).Error
}

func (r *presentRepoImpl) Delete(ctx context.Context, presentID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Present{}, presentID).Error
}

// DecrementStock lowers the stock by quantity, never below zero.
func (r *presentRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, presentID uint, quantity int) error {
	var present model.Present
	if err := tx.WithContext(ctx).First(&present, presentID).Error; err != nil {
		return err
	}

	stock := present.Stock - quantity
	if stock < 0 {
		stock = 0
	}

	return tx.WithContext(ctx).Model(&model.Present{}).
		Where("id = ?", presentID).
		Update("stock", stock).Error
}
