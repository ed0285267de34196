package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"gorm.io/gorm"
)

type IProductService interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	SearchProducts(ctx context.Context, category, search string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductService struct {
	productRepo *db.ProductRepo
}

func NewProductService(productRepo *db.ProductRepo) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func validateProduct(product *model.Product) error {
	if product.Name == "" {
		return ErrInvalidInput
	}
	if product.Price.IsNegative() {
		return ErrInvalidInput
	}
	return nil
}

func (p *ProductService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := p.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, db.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (p *ProductService) SearchProducts(ctx context.Context, category, search string) ([]model.Product, error) {
	return p.productRepo.SearchProducts(ctx, category, search)
}

func (p *ProductService) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := p.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return p.productRepo.GetProductByID(ctx, product.ProductID)
}

func (p *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return p.productRepo.DeleteProduct(ctx, id)
}
