package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null;type:varchar(100)" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Category    string          `gorm:"type:varchar(50);index" json:"category"`
	Stock       uint            `gorm:"not null" json:"stock"` // 庫存不可為負，扣減一律走條件式更新
	ImageURL    string          `gorm:"type:varchar(255)" json:"image_url"`
	BaseModel
}
