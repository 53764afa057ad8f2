package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/models"
)

// CatalogService is plain CRUD over one catalog table.
type CatalogService[T models.Coach | models.Supplement | models.Product] struct {
	db    *gorm.DB
	order string
}

func NewCoachService(db *gorm.DB) *CatalogService[models.Coach] {
	return &CatalogService[models.Coach]{db: db, order: "id"}
}

func NewSupplementService(db *gorm.DB) *CatalogService[models.Supplement] {
	return &CatalogService[models.Supplement]{db: db, order: "id"}
}

func (s *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	err := s.db.WithContext(ctx).Order(s.order).Find(&items).Error
	return items, err
}

func (s *CatalogService[T]) Get(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *CatalogService[T]) Create(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// Update loads the row, lets patch modify it and saves the result. patch
// must not change the primary key.
func (s *CatalogService[T]) Update(ctx context.Context, id uint, patch func(*T) error) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch(item); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService[T]) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(item).Error
}
