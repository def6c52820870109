package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products in the e-commerce schema.
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Product is an isolated e-commerce entity with no relationship to the
// video platform beyond sharing the users table.
type Product struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	ProductImage string         `json:"product_image"`
	Price        int64          `gorm:"not null;default:0" json:"price"`
	Stock        int64          `gorm:"not null;default:0" json:"stock"`
	CategoryID   uint           `gorm:"not null;index" json:"category_id"`
	Category     Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	OwnerID      uint           `gorm:"index" json:"owner_id"`
	Owner        User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
