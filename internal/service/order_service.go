package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"gorm.io/gorm"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
)

type IOrderService interface {
	PlaceOrder(ctx context.Context, userID uint, shippingAddress json.RawMessage, paymentMethod string) (*model.Order, error)
	GetOrder(ctx context.Context, userID uint, orderID string) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status string) (*model.Order, error)
}

type OrderService struct {
	orderRepo *db.OrderRepo
}

func NewOrderService(orderRepo *db.OrderRepo) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// PlaceOrder 結帳，整段委派給單一資料庫交易
func (o *OrderService) PlaceOrder(ctx context.Context, userID uint, shippingAddress json.RawMessage, paymentMethod string) (*model.Order, error) {
	return o.orderRepo.CreateOrderFromCart(ctx, userID, shippingAddress, paymentMethod)
}

// GetOrder 用戶視角的單筆訂單，不屬於該用戶一律視為不存在
func (o *OrderService) GetOrder(ctx context.Context, userID uint, orderID string) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, db.ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, db.ErrOrderNotFound
	}
	return order, nil
}

func (o *OrderService) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	return o.orderRepo.GetOrdersByUserID(ctx, userID)
}

// GetAllOrders 後台用，跨用戶並帶購買人資訊
func (o *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return o.orderRepo.GetAllOrdersWithUser(ctx)
}

/*
UpdateOrderStatus 僅驗證狀態屬於合法集合，不限制轉移路徑
非法狀態直接退回，不碰資料列
*/
func (o *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status string) (*model.Order, error) {
	if !model.IsValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := o.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return o.orderRepo.GetOrderByID(ctx, orderID)
}
