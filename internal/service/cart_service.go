package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"gorm.io/gorm"
)

type ICartService interface {
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error)
	SetQuantity(ctx context.Context, userID, cartItemID uint, quantity int) error
	RemoveItem(ctx context.Context, userID, cartItemID uint) error
	ListItems(ctx context.Context, userID uint) ([]model.CartItem, error)
}

type CartService struct {
	cartRepo    *db.CartRepo
	productRepo *db.ProductRepo
}

func NewCartService(cartRepo *db.CartRepo, productRepo *db.ProductRepo) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

/*
AddItem 加入購物車，同商品重複加入時累加數量
這裡的庫存檢查只是提前擋掉明顯超量的請求，結帳時仍會以交易內的現值重驗
*/
func (c *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidInput
	}

	product, err := c.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, db.ErrProductNotFound
		}
		return nil, err
	}

	existing, err := c.cartRepo.GetCartItemByProduct(ctx, userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newQuantity := quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}
	if newQuantity > int(product.Stock) {
		return nil, fmt.Errorf("%w: %s", db.ErrInsufficientStock, product.Name)
	}

	if existing != nil {
		if err := c.cartRepo.UpdateCartItemQuantity(ctx, userID, existing.CartItemID, newQuantity); err != nil {
			return nil, err
		}
		existing.Quantity = newQuantity
		return existing, nil
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := c.cartRepo.CreateCartItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetQuantity 數量 <= 0 視為移除該項目
func (c *CartService) SetQuantity(ctx context.Context, userID, cartItemID uint, quantity int) error {
	if quantity <= 0 {
		return c.cartRepo.DeleteCartItem(ctx, userID, cartItemID)
	}
	return c.cartRepo.UpdateCartItemQuantity(ctx, userID, cartItemID, quantity)
}

func (c *CartService) RemoveItem(ctx context.Context, userID, cartItemID uint) error {
	return c.cartRepo.DeleteCartItem(ctx, userID, cartItemID)
}

// ListItems 僅供顯示，不做庫存重驗
func (c *CartService) ListItems(ctx context.Context, userID uint) ([]model.CartItem, error) {
	return c.cartRepo.GetCartItemsByUserID(ctx, userID)
}
