package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProductRepoTestSuite struct {
	suite.Suite
	dao         *DbDao
	productRepo *ProductRepo
}

func (suite *ProductRepoTestSuite) SetupSuite() {
	suite.dao = newTestDao(suite.T())
	suite.productRepo = NewProductRepo(suite.dao)
}

func (suite *ProductRepoTestSuite) SetupTest() {
	suite.dao.Exec("DELETE FROM products")
}

func (suite *ProductRepoTestSuite) createTestProduct(name, category string) *model.Product {
	product := &model.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.NewFromInt(100),
		Category:    category,
		Stock:       10,
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

func (suite *ProductRepoTestSuite) TestSearchProducts_ByCategory() {
	suite.createTestProduct("Keyboard", "electronics")
	suite.createTestProduct("Mug", "kitchen")

	products, err := suite.productRepo.SearchProducts(context.Background(), "electronics", "")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	require.Equal(suite.T(), "Keyboard", products[0].Name)
}

func (suite *ProductRepoTestSuite) TestSearchProducts_ByKeyword() {
	suite.createTestProduct("Mechanical Keyboard", "electronics")
	suite.createTestProduct("Mouse", "electronics")

	products, err := suite.productRepo.SearchProducts(context.Background(), "", "Keyboard")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)

	// 描述欄位也要命中
	products, err = suite.productRepo.SearchProducts(context.Background(), "", "Mouse description")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	require.Equal(suite.T(), "Mouse", products[0].Name)
}

// 關鍵字不分大小寫
func (suite *ProductRepoTestSuite) TestSearchProducts_CaseInsensitive() {
	suite.createTestProduct("Mechanical Keyboard", "electronics")

	products, err := suite.productRepo.SearchProducts(context.Background(), "", "kEyBoArD")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	require.Equal(suite.T(), "Mechanical Keyboard", products[0].Name)

	products, err = suite.productRepo.SearchProducts(context.Background(), "", "MECHANICAL")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
}

func (suite *ProductRepoTestSuite) TestSearchProducts_NoFilter() {
	suite.createTestProduct("A", "x")
	suite.createTestProduct("B", "y")

	products, err := suite.productRepo.SearchProducts(context.Background(), "", "")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 2)
}

func (suite *ProductRepoTestSuite) TestUpdateProduct() {
	product := suite.createTestProduct("Before", "x")

	product.Name = "After"
	product.Price = decimal.NewFromInt(200)
	require.NoError(suite.T(), suite.productRepo.UpdateProduct(context.Background(), product))

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "After", found.Name)
	require.True(suite.T(), found.Price.Equal(decimal.NewFromInt(200)))
}

func (suite *ProductRepoTestSuite) TestUpdateProduct_NotFound() {
	err := suite.productRepo.UpdateProduct(context.Background(), &model.Product{ProductID: 999, Name: "X"})
	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductRepoTestSuite) TestDeleteProduct() {
	product := suite.createTestProduct("Doomed", "x")

	require.NoError(suite.T(), suite.productRepo.DeleteProduct(context.Background(), product.ProductID))

	_, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.Error(suite.T(), err)

	require.ErrorIs(suite.T(), suite.productRepo.DeleteProduct(context.Background(), product.ProductID), ErrProductNotFound)
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}
