package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Recipe struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"-"`
	User        User            `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	TimeMinutes *int            `json:"time_minutes"`
	Calories    *uint           `json:"calories"`
	Price       decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"price"`
	Link        string          `gorm:"size:255" json:"link"`
	Tags        []Tag           `gorm:"many2many:recipe_tags;" json:"tags"`
	Ingredients []Ingredient    `gorm:"many2many:recipe_ingredients;" json:"ingredients"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// Tag for filtering recipes.
type Tag struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	UserID uint   `gorm:"index;not null" json:"-"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Ingredient struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	UserID uint   `gorm:"index;not null" json:"-"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
