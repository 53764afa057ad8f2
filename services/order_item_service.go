package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/models"
)

type OrderItemInput struct {
	Order    *uint            `json:"order"`
	Product  *uint            `json:"product"`
	Quantity *decimal.Decimal `json:"quantity"`
}

// OrderItemService is direct CRUD on line items, outside the order update
// path.
type OrderItemService struct {
	db *gorm.DB
}

func NewOrderItemService(db *gorm.DB) *OrderItemService {
	return &OrderItemService{db: db}
}

func (s *OrderItemService) List(ctx context.Context) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.WithContext(ctx).Preload("Product").Order("id DESC").Find(&items).Error
	return items, err
}

func (s *OrderItemService) Get(ctx context.Context, id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := s.db.WithContext(ctx).Preload("Product").First(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *OrderItemService) Create(ctx context.Context, in OrderItemInput) (*models.OrderItem, error) {
	if in.Order == nil {
		return nil, fmt.Errorf("%w: order is required", ErrInvalidInput)
	}
	item := &models.OrderItem{OrderID: *in.Order, Quantity: decimal.NewFromInt(1)}
	if err := s.apply(ctx, item, in); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Omit("Product").Create(item).Error; err != nil {
		return nil, fmt.Errorf("create order item: %w", err)
	}
	return s.Get(ctx, item.ID)
}

func (s *OrderItemService) Update(ctx context.Context, id uint, in OrderItemInput) (*models.OrderItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, item, in); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Omit("Product").Save(item).Error; err != nil {
		return nil, fmt.Errorf("update order item %d: %w", id, err)
	}
	return s.Get(ctx, id)
}

func (s *OrderItemService) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.OrderItem{}, item.ID).Error
}

// apply checks that referenced rows exist before assigning them.
func (s *OrderItemService) apply(ctx context.Context, item *models.OrderItem, in OrderItemInput) error {
	if in.Order != nil {
		var n int64
		if err := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", *in.Order).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: order %d does not exist", ErrInvalidInput, *in.Order)
		}
		item.OrderID = *in.Order
	}
	if in.Product != nil {
		var n int64
		if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", *in.Product).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: product %d does not exist", ErrInvalidInput, *in.Product)
		}
		item.ProductID = in.Product
		item.Product = nil
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
		}
		item.Quantity = in.Quantity.Round(2)
	}
	return nil
}
