package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CartServiceTestSuite struct {
	suite.Suite
	dao         *db.DbDao
	cartService *CartService
	productRepo *db.ProductRepo
}

func (suite *CartServiceTestSuite) SetupSuite() {
	suite.dao = newTestDao(suite.T())
	suite.productRepo = db.NewProductRepo(suite.dao)
	suite.cartService = NewCartService(db.NewCartRepo(suite.dao), suite.productRepo)
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.dao.Exec("DELETE FROM cart_items")
	suite.dao.Exec("DELETE FROM products")
}

func (suite *CartServiceTestSuite) createTestProduct(stock uint) *model.Product {
	product := &model.Product{
		Name:  "Test Product",
		Price: decimal.NewFromInt(100),
		Stock: stock,
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

// 重複加入同商品時數量累加
func (suite *CartServiceTestSuite) TestAddItem_SumsQuantity() {
	product := suite.createTestProduct(10)

	_, err := suite.cartService.AddItem(context.Background(), 1, product.ProductID, 2)
	require.NoError(suite.T(), err)
	item, err := suite.cartService.AddItem(context.Background(), 1, product.ProductID, 3)
	require.NoError(suite.T(), err)

	require.Equal(suite.T(), 5, item.Quantity)

	items, err := suite.cartService.ListItems(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)
	require.Equal(suite.T(), 5, items[0].Quantity)
}

// 累加後超過庫存即拒絕，原有數量不變
func (suite *CartServiceTestSuite) TestAddItem_RejectsOverStock() {
	product := suite.createTestProduct(5)

	_, err := suite.cartService.AddItem(context.Background(), 1, product.ProductID, 4)
	require.NoError(suite.T(), err)

	_, err = suite.cartService.AddItem(context.Background(), 1, product.ProductID, 2)
	require.ErrorIs(suite.T(), err, db.ErrInsufficientStock)

	items, err := suite.cartService.ListItems(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 4, items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestAddItem_ProductNotFound() {
	_, err := suite.cartService.AddItem(context.Background(), 1, 999, 1)
	require.ErrorIs(suite.T(), err, db.ErrProductNotFound)
}

func (suite *CartServiceTestSuite) TestAddItem_RejectsNonPositiveQuantity() {
	product := suite.createTestProduct(5)

	_, err := suite.cartService.AddItem(context.Background(), 1, product.ProductID, -1)
	require.ErrorIs(suite.T(), err, ErrInvalidInput)
	_, err = suite.cartService.AddItem(context.Background(), 1, product.ProductID, 0)
	require.ErrorIs(suite.T(), err, ErrInvalidInput)
}

func (suite *CartServiceTestSuite) TestSetQuantity() {
	product := suite.createTestProduct(10)
	item, err := suite.cartService.AddItem(context.Background(), 1, product.ProductID, 2)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.cartService.SetQuantity(context.Background(), 1, item.CartItemID, 7))

	items, err := suite.cartService.ListItems(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 7, items[0].Quantity)
}

// 數量歸零視為移除
func (suite *CartServiceTestSuite) TestSetQuantity_ZeroDeletes() {
	product := suite.createTestProduct(10)
	item, err := suite.cartService.AddItem(context.Background(), 1, product.ProductID, 2)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.cartService.SetQuantity(context.Background(), 1, item.CartItemID, 0))

	items, err := suite.cartService.ListItems(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), items)
}

// 項目屬於其他用戶時視為不存在
func (suite *CartServiceTestSuite) TestSetQuantity_WrongUser() {
	product := suite.createTestProduct(10)
	item, err := suite.cartService.AddItem(context.Background(), 1, product.ProductID, 2)
	require.NoError(suite.T(), err)

	err = suite.cartService.SetQuantity(context.Background(), 2, item.CartItemID, 5)
	require.ErrorIs(suite.T(), err, db.ErrCartItemNotFound)
}

func (suite *CartServiceTestSuite) TestRemoveItem() {
	product := suite.createTestProduct(10)
	item, err := suite.cartService.AddItem(context.Background(), 1, product.ProductID, 2)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.cartService.RemoveItem(context.Background(), 1, item.CartItemID))

	// 再次刪除視為不存在
	err = suite.cartService.RemoveItem(context.Background(), 1, item.CartItemID)
	require.ErrorIs(suite.T(), err, db.ErrCartItemNotFound)
}

// 顯示用清單帶商品現值
func (suite *CartServiceTestSuite) TestListItems_WithProduct() {
	product := suite.createTestProduct(10)
	_, err := suite.cartService.AddItem(context.Background(), 1, product.ProductID, 2)
	require.NoError(suite.T(), err)

	items, err := suite.cartService.ListItems(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)
	require.Equal(suite.T(), "Test Product", items[0].Product.Name)
	require.True(suite.T(), items[0].Product.Price.Equal(decimal.NewFromInt(100)))
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
