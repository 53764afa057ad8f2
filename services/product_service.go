package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/models"
)

type ProductService struct {
	*CatalogService[models.Product]
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{&CatalogService[models.Product]{db: db, order: "name"}}
}

// Delete removes the product. Line items that referenced it stay on their
// orders with the product cleared.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrderItem{}).Where("product_id = ?", id).Update("product_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(product).Error
	})
}
