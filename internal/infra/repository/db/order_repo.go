package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrEmptyCart 購物車為空，無法成立訂單
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInsufficientStock 商品庫存不足
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrOrderNotFound 訂單不存在
	ErrOrderNotFound = errors.New("order not found")
)

type OrderRepo struct {
	dbDao *DbDao
}

func NewOrderRepo(dbDao *DbDao) *OrderRepo {
	return &OrderRepo{dbDao: dbDao}
}

/*
CreateOrderFromCart 購物車轉訂單，整段為單一交易

 1. 讀取該用戶整車項目與商品現值，商品已下架的項目不列入
 2. 逐項做條件式扣庫存 (stock >= quantity 才會命中)，未命中即整筆失敗
 3. 以當下價格凍結寫入訂單項目並計算總額
 4. 清空該用戶購物車

任一步失敗即全部回滾，其他交易看不到中間狀態。
扣庫存不採先讀後寫：條件式 UPDATE 會在並發提交時於商品列上序列化，
第二個結帳者必定看見第一個結帳者扣減後的庫存。
*/
func (s *OrderRepo) CreateOrderFromCart(ctx context.Context, userID uint, shippingAddress json.RawMessage, paymentMethod string) (*model.Order, error) {
	var created *model.Order

	err := s.dbDao.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cartItems []model.CartItem
		// 依product_id固定順序扣庫存，並發的多品項結帳才不會互相死鎖
		if err := tx.Preload("Product").
			Where("user_id = ?", userID).
			Order("product_id").
			Find(&cartItems).Error; err != nil {
			return err
		}

		// 商品已下架的車內項目直接略過，結帳只處理仍存在的商品
		valid := cartItems[:0]
		for _, item := range cartItems {
			if item.Product.ProductID != 0 {
				valid = append(valid, item)
			}
		}
		cartItems = valid

		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		order := &model.Order{
			OrderID:         uuid.NewString(),
			UserID:          userID,
			Status:          model.OrderStatusPending,
			ShippingAddress: shippingAddress,
			PaymentMethod:   paymentMethod,
		}

		total := decimal.NewFromInt(0)
		for _, item := range cartItems {
			// 條件式扣庫存，命中列數為 0 表示庫存不足
			result := tx.Model(&model.Product{}).
				Where("product_id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, item.Product.Name)
			}

			total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			order.OrderItems = append(order.OrderItems, model.OrderItem{
				OrderID:   order.OrderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price, // 價格凍結於此
			})
		}
		order.TotalAmount = total

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// 回傳值直接帶商品資訊，免再查一次
		for i := range order.OrderItems {
			order.OrderItems[i].Product = cartItems[i].Product
		}

		if err := tx.Where("user_id = ?", userID).
			Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		created = order
		return nil
	})

	if err != nil {
		return nil, err
	}
	return created, nil
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := s.dbDao.WithContext(ctx).
		Preload("OrderItems.Product").
		First(&order, "order_id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據用戶ID查詢訂單
func (s *OrderRepo) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.dbDao.WithContext(ctx).
		Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Read - 查詢所有訂單，連帶購買人資訊，後台用
func (s *OrderRepo) GetAllOrdersWithUser(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.dbDao.WithContext(ctx).
		Preload("OrderItems.Product").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Update - 更新訂單狀態
func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	result := s.dbDao.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
