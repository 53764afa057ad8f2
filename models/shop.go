package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
	OrderStatusDone    OrderStatus = "Done"
)

func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusDone
}

type Product struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderStatus   OrderStatus     `gorm:"size:9;not null;default:Pending" json:"order_status"`
	TotalQuantity int             `gorm:"not null;default:0" json:"total_quantity"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"total_price"`
	UserID        *uint           `gorm:"index" json:"user"`
	User          *User           `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	OrderItems    []OrderItem     `gorm:"constraint:OnDelete:CASCADE" json:"order_items"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}

// OrderItem is a quantity line on an order. Product is a reference only and
// is cleared when the product is removed.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order"`
	ProductID *uint           `gorm:"index" json:"product"`
	Product   *Product        `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Quantity  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:1.0" json:"quantity"`
}
