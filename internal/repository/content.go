package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"wedding-registry-backend/internal/model"
)

type ContentRepository interface {
	FindBySection(ctx context.Context, section string) (*model.Content, error)
	Create(ctx context.Context, content *model.Content) error
	UpdateBySection(ctx context.Context, section, text string) (*model.Content, error)
}

type contentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepoImpl{
		db: db,
	}
}

// FindBySection returns (nil, nil) when the section has never been written.
func (r *contentRepoImpl) FindBySection(ctx context.Context, section string) (*model.Content, error) {
	var content model.Content
	err := r.db.WithContext(ctx).
		Where("section = ?", section).
		First(&content).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &content, nil
}

func (r *contentRepoImpl) Create(ctx context.Context, content *model.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepoImpl) UpdateBySection(ctx context.Context, section, text string) (*model.Content, error) {
	err := r.db.WithContext(ctx).Model(&model.Content{}).
		Where("section = ?", section).
		Updates(map[string]interface{}{
			"content":    text,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}

	return r.FindBySection(ctx, section)
}
