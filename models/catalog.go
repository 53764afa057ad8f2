package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Coach struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	PricePerMonth decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price_per_month"`
}

type Supplement struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	Name     string          `gorm:"size:255;not null" json:"name"`
	Price    decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`
	Calories *uint           `json:"calories"`
}

// Payment buys a coaching subscription of Duration months.
type Payment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"index;not null" json:"user_id"`
	User      User            `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Duration  int             `gorm:"not null" json:"duration"`
	Price     decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}
