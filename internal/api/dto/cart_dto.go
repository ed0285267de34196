package dto

import (
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

type AddCartItemDTO struct {
	UserID    uint `json:"userId"`
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemDTO struct {
	UserID   uint `json:"userId"`
	Quantity int  `json:"quantity"`
}

// CartItemDTO 購物車顯示用，價格為商品現值，非凍結價
type CartItemDTO struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Quantity  int             `json:"quantity"`
}

func ConvertCartItemsToDTO(items []model.CartItem) []CartItemDTO {
	dtos := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, CartItemDTO{
			ID:        item.CartItemID,
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			ImageURL:  item.Product.ImageURL,
			Quantity:  item.Quantity,
		})
	}
	return dtos
}
