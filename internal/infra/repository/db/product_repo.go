package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
)

type ProductRepo struct {
	dbDao *DbDao
}

func NewProductRepo(dbDao *DbDao) *ProductRepo {
	return &ProductRepo{dbDao: dbDao}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.dbDao.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.dbDao.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 依分類與關鍵字查詢商品，兩者皆可為空
func (s *ProductRepo) SearchProducts(ctx context.Context, category, search string) ([]model.Product, error) {
	var products []model.Product
	query := s.dbDao.WithContext(ctx).Model(&model.Product{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		// LOWER兩側統一大小寫，postgres的LIKE是區分大小寫的
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	err := query.Order("created_at DESC").Find(&products).Error
	return products, err
}

// Update - 更新商品
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	result := s.dbDao.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", product.ProductID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"category":    product.Category,
			"stock":       product.Stock,
			"image_url":   product.ImageURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete - 硬刪除商品
func (s *ProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	result := s.dbDao.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
