package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

var (
	// ErrCartItemNotFound 購物車項目不存在或不屬於該用戶
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartRepo struct {
	dbDao *DbDao
}

func NewCartRepo(dbDao *DbDao) *CartRepo {
	return &CartRepo{dbDao: dbDao}
}

// Read - 取用戶整車項目，連帶商品資訊供顯示
func (s *CartRepo) GetCartItemsByUserID(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := s.dbDao.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error
	return items, err
}

// Read - 根據 (userID, productID) 查詢單一項目
func (s *CartRepo) GetCartItemByProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.dbDao.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create - 新增購物車項目
func (s *CartRepo) CreateCartItem(ctx context.Context, item *model.CartItem) error {
	return s.dbDao.WithContext(ctx).Create(item).Error
}

// Update - 更新項目數量，僅限該用戶持有的項目
func (s *CartRepo) UpdateCartItemQuantity(ctx context.Context, userID, cartItemID uint, quantity int) error {
	result := s.dbDao.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_item_id = ? AND user_id = ?", cartItemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Delete - 刪除項目，僅限該用戶持有的項目
func (s *CartRepo) DeleteCartItem(ctx context.Context, userID, cartItemID uint) error {
	result := s.dbDao.WithContext(ctx).
		Where("cart_item_id = ? AND user_id = ?", cartItemID, userID).
		Delete(&model.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
