package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"wedding-registry-backend/internal/dto"
	"wedding-registry-backend/internal/model"
	"wedding-registry-backend/internal/repository"
)

type PresentService interface {
	Create(ctx context.Context, req *dto.PresentRequest) (*model.Present, error)
	Get(ctx context.Context, presentID uint) (*model.Present, error)
	List(ctx context.Context) ([]*model.Present, error)
	Update(ctx context.Context, presentID uint, req *dto.PresentRequest) (*model.Present, error)
	Delete(ctx context.Context, presentID uint) error
}

type presentServiceImpl struct {
	presentRepo repository.PresentRepository
}

func NewPresentService(presentRepo repository.PresentRepository) PresentService {
	return &presentServiceImpl{
		presentRepo: presentRepo,
	}
}

func (s *presentServiceImpl) Create(ctx context.Context, req *dto.PresentRequest) (*model.Present, error) {
	present := &model.Present{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}
	if err := s.presentRepo.Create(ctx, present); err != nil {
		return nil, fmt.Errorf("create present: %w", err)
	}

	return present, nil
}

func (s *presentServiceImpl) Get(ctx context.Context, presentID uint) (*model.Present, error) {
	present, err := s.presentRepo.FindByID(ctx, presentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPresentNotFound
	}
	if err != nil {
		return nil, err
	}

	return present, nil
}

func (s *presentServiceImpl) List(ctx context.Context) ([]*model.Present, error) {
	return s.presentRepo.List(ctx)
}

func (s *presentServiceImpl) Update(ctx context.Context, presentID uint, req *dto.PresentRequest) (*model.Present, error) {
	present, err := s.Get(ctx, presentID)
	if err != nil {
		return nil, err
	}

	present.Name = req.Name
	present.Description = req.Description
	present.Price = req.Price
	present.Stock = req.Stock
	present.ImageURL = req.ImageURL

	if err := s.presentRepo.Update(ctx, present); err != nil {
		return nil, fmt.Errorf("update present: %w", err)
	}

	return present, nil
}

func (s *presentServiceImpl) Delete(ctx context.Context, presentID uint) error {
	if _, err := s.Get(ctx, presentID); err != nil {
		return err
	}

	return s.presentRepo.Delete(ctx, presentID)
}
