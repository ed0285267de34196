package dto

import (
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       uint            `json:"stock"`
	ImageURL    string          `json:"image_url"`
}
