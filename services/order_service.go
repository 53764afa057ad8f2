package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/models"
)

// OrderItemUpdate is one incoming line-item change on an order update.
type OrderItemUpdate struct {
	Quantity decimal.Decimal
}

// OrderItemStore is the persistence the reconciliation rule needs.
type OrderItemStore interface {
	// FirstItem returns the order's first line item, or nil if it has none.
	FirstItem(ctx context.Context, orderID uint) (*models.OrderItem, error)
	CreateItem(ctx context.Context, item *models.OrderItem) error
	SaveItem(ctx context.Context, item *models.OrderItem) error
}

// ReconcileOrderItems applies each update in turn: its quantity is added to
// the order's first line item, or a new product-less item is created when
// the order has none. The first item is looked up again for every update
// and is not matched by product. Each update is committed on its own; an
// error stops the batch and leaves earlier updates in place.
func ReconcileOrderItems(ctx context.Context, store OrderItemStore, orderID uint, updates []OrderItemUpdate) error {
	for i, u := range updates {
		existing, err := store.FirstItem(ctx, orderID)
		if err != nil {
			return fmt.Errorf("order item %d: lookup: %w", i, err)
		}

		if existing != nil {
			existing.Quantity = existing.Quantity.Add(u.Quantity)
			if err := store.SaveItem(ctx, existing); err != nil {
				return fmt.Errorf("order item %d: save: %w", i, err)
			}
			continue
		}

		item := &models.OrderItem{OrderID: orderID, Quantity: u.Quantity}
		if err := store.CreateItem(ctx, item); err != nil {
			return fmt.Errorf("order item %d: create: %w", i, err)
		}
	}
	return nil
}

type gormOrderItemStore struct {
	db *gorm.DB
}

func NewGormOrderItemStore(db *gorm.DB) OrderItemStore {
	return &gormOrderItemStore{db: db}
}

// FirstItem follows the line items' default ordering, newest id first.
func (s *gormOrderItemStore) FirstItem(ctx context.Context, orderID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id DESC").
		Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *gormOrderItemStore) CreateItem(ctx context.Context, item *models.OrderItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *gormOrderItemStore) SaveItem(ctx context.Context, item *models.OrderItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

type OrderItemView struct {
	ID          uint            `json:"id"`
	Order       uint            `json:"order"`
	Product     *uint           `json:"product"`
	ProductName *string         `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type OrderView struct {
	ID            uint               `json:"id"`
	OrderStatus   models.OrderStatus `json:"order_status"`
	TotalQuantity int                `json:"total_quantity"`
	TotalPrice    decimal.Decimal    `json:"total_price"`
	User          *uint              `json:"user"`
	UserEmail     *string            `json:"user_email"`
	OrderItems    []OrderItemView    `json:"order_items"`
}

func NewOrderItemView(it *models.OrderItem) OrderItemView {
	v := OrderItemView{ID: it.ID, Order: it.OrderID, Product: it.ProductID, Quantity: it.Quantity}
	if it.Product != nil {
		name := it.Product.Name
		v.ProductName = &name
	}
	return v
}

func NewOrderView(o *models.Order) OrderView {
	v := OrderView{
		ID:            o.ID,
		OrderStatus:   o.OrderStatus,
		TotalQuantity: o.TotalQuantity,
		TotalPrice:    o.TotalPrice,
		User:          o.UserID,
		OrderItems:    make([]OrderItemView, 0, len(o.OrderItems)),
	}
	if o.User != nil {
		email := o.User.Email
		v.UserEmail = &email
	}
	for i := range o.OrderItems {
		v.OrderItems = append(v.OrderItems, NewOrderItemView(&o.OrderItems[i]))
	}
	return v
}

// OrderInput holds the plain order fields. OrderItems only matter on update.
type OrderInput struct {
	OrderStatus   *models.OrderStatus
	TotalQuantity *int
	TotalPrice    *decimal.Decimal
	OrderItems    []OrderItemUpdate
}

// OrderNotifier is told about every order change that has an owner.
type OrderNotifier interface {
	OrderUpdated(userID uint, order OrderView)
}

type OrderService struct {
	db       *gorm.DB
	notifier OrderNotifier
	log      *zap.Logger
}

func NewOrderService(db *gorm.DB, notifier OrderNotifier, log *zap.Logger) *OrderService {
	return &OrderService{db: db, notifier: notifier, log: log}
}

func (s *OrderService) preloaded(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("User").
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("id DESC") }).
		Preload("OrderItems.Product")
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.preloaded(ctx).Order("id DESC").Find(&orders).Error
	return orders, err
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.preloaded(ctx).First(&order, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

// Create makes an order owned by userID. Line items are added separately.
func (s *OrderService) Create(ctx context.Context, userID uint, in OrderInput) (*models.Order, error) {
	order := &models.Order{
		OrderStatus: models.OrderStatusPending,
		TotalPrice:  decimal.Zero,
		UserID:      &userID,
	}
	if err := applyOrderFields(order, in); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return s.Get(ctx, order.ID)
}

// Update reconciles the incoming line items into the order and then assigns
// the plain order fields.
func (s *OrderService) Update(ctx context.Context, id uint, in OrderInput) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateOrderFields(in); err != nil {
		return nil, err
	}

	if len(in.OrderItems) > 0 {
		if err := ReconcileOrderItems(ctx, NewGormOrderItemStore(s.db), order.ID, in.OrderItems); err != nil {
			return nil, fmt.Errorf("reconcile order %d: %w", order.ID, err)
		}
		s.log.Debug("order items reconciled", zap.Uint("order_id", order.ID), zap.Int("updates", len(in.OrderItems)))
	}

	if err := applyOrderFields(order, in); err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"order_status":   order.OrderStatus,
		"total_quantity": order.TotalQuantity,
		"total_price":    order.TotalPrice,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("update order %d: %w", order.ID, err)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil && updated.UserID != nil {
		s.notifier.OrderUpdated(*updated.UserID, NewOrderView(updated))
	}
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, order.ID).Error
	})
}

func validateOrderFields(in OrderInput) error {
	if in.OrderStatus != nil && !in.OrderStatus.Valid() {
		return fmt.Errorf("%w: %q is not a valid order status", ErrInvalidInput, *in.OrderStatus)
	}
	if in.TotalQuantity != nil && *in.TotalQuantity < 0 {
		return fmt.Errorf("%w: total_quantity must not be negative", ErrInvalidInput)
	}
	if in.TotalPrice != nil && in.TotalPrice.IsNegative() {
		return fmt.Errorf("%w: total_price must not be negative", ErrInvalidInput)
	}
	for i, it := range in.OrderItems {
		if it.Quantity.IsNegative() {
			return fmt.Errorf("%w: order_items[%d].quantity must not be negative", ErrInvalidInput, i)
		}
	}
	return nil
}

func applyOrderFields(o *models.Order, in OrderInput) error {
	if err := validateOrderFields(in); err != nil {
		return err
	}
	if in.OrderStatus != nil {
		o.OrderStatus = *in.OrderStatus
	}
	if in.TotalQuantity != nil {
		o.TotalQuantity = *in.TotalQuantity
	}
	if in.TotalPrice != nil {
		o.TotalPrice = in.TotalPrice.Round(2)
	}
	return nil
}
