package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Name         string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	CurrentPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
