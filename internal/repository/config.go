package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wedding-registry-backend/internal/model"
)

type ConfigRepository interface {
	GetFirst(ctx context.Context) (*model.Config, error)
}

type configRepoImpl struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepoImpl{
		db: db,
	}
}

// GetFirst returns (nil, nil) when no config row exists yet.
func (r *configRepoImpl) GetFirst(ctx context.Context) (*model.Config, error) {
	var config model.Config
	err := r.db.WithContext(ctx).First(&config).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &config, nil
}
