package dto

import (
	"encoding/json"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

type PlaceOrderDTO struct {
	UserID          uint            `json:"userId"`
	ShippingAddress json.RawMessage `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

type OrderItemDTO struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderDTO struct {
	ID              string          `json:"id"`
	UserID          uint            `json:"user_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	ShippingAddress json.RawMessage `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	Items           []OrderItemDTO  `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// AdminOrderDTO 後台訂單視圖，多帶購買人資訊
type AdminOrderDTO struct {
	OrderDTO
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func ConvertOrderModelToDTO(order *model.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, OrderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return OrderDTO{
		ID:              order.OrderID,
		UserID:          order.UserID,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
		Items:           items,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func ConvertOrdersToDTO(orders []model.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, ConvertOrderModelToDTO(&orders[i]))
	}
	return dtos
}

func ConvertOrdersToAdminDTO(orders []model.Order) []AdminOrderDTO {
	dtos := make([]AdminOrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, AdminOrderDTO{
			OrderDTO:  ConvertOrderModelToDTO(&orders[i]),
			Email:     orders[i].User.Email,
			FirstName: orders[i].User.FirstName,
			LastName:  orders[i].User.LastName,
		})
	}
	return dtos
}
