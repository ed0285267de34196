package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	dao          *db.DbDao
	orderService *OrderService
	cartService  *CartService
	productRepo  *db.ProductRepo
	userRepo     *db.UserRepo
}

func (suite *OrderServiceTestSuite) SetupSuite() {
	suite.dao = newTestDao(suite.T())
	suite.productRepo = db.NewProductRepo(suite.dao)
	suite.userRepo = db.NewUserRepo(suite.dao)
	suite.orderService = NewOrderService(db.NewOrderRepo(suite.dao))
	suite.cartService = NewCartService(db.NewCartRepo(suite.dao), suite.productRepo)
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.dao.Exec("DELETE FROM order_items")
	suite.dao.Exec("DELETE FROM orders")
	suite.dao.Exec("DELETE FROM cart_items")
	suite.dao.Exec("DELETE FROM products")
	suite.dao.Exec("DELETE FROM users")
}

func (suite *OrderServiceTestSuite) createTestUser(email string) *model.User {
	user := &model.User{Email: email, PasswordHash: "hashed"}
	_, err := suite.userRepo.CreateUser(context.Background(), user)
	require.NoError(suite.T(), err)
	return user
}

func (suite *OrderServiceTestSuite) placeTestOrder(userID uint) *model.Order {
	product := &model.Product{Name: "Product", Price: decimal.NewFromInt(10), Stock: 100}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	_, err := suite.cartService.AddItem(context.Background(), userID, product.ProductID, 1)
	require.NoError(suite.T(), err)

	order, err := suite.orderService.PlaceOrder(context.Background(), userID, nil, "cod")
	require.NoError(suite.T(), err)
	return order
}

func (suite *OrderServiceTestSuite) TestGetOrder_ScopedToOwner() {
	owner := suite.createTestUser("owner@example.com")
	stranger := suite.createTestUser("stranger@example.com")
	order := suite.placeTestOrder(owner.UserID)

	found, err := suite.orderService.GetOrder(context.Background(), owner.UserID, order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), order.OrderID, found.OrderID)

	// 別人的訂單一律視為不存在
	_, err = suite.orderService.GetOrder(context.Background(), stranger.UserID, order.OrderID)
	require.ErrorIs(suite.T(), err, db.ErrOrderNotFound)
}

func (suite *OrderServiceTestSuite) TestGetOrder_NotFound() {
	user := suite.createTestUser("owner@example.com")
	_, err := suite.orderService.GetOrder(context.Background(), user.UserID, "missing")
	require.ErrorIs(suite.T(), err, db.ErrOrderNotFound)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus() {
	user := suite.createTestUser("owner@example.com")
	order := suite.placeTestOrder(user.UserID)

	updated, err := suite.orderService.UpdateOrderStatus(context.Background(), order.OrderID, model.OrderStatusProcessing)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusProcessing, updated.Status)
}

// 非法狀態直接退回，狀態與updated_at皆不變
func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_InvalidStatus() {
	user := suite.createTestUser("owner@example.com")
	order := suite.placeTestOrder(user.UserID)

	before, err := suite.orderService.GetOrder(context.Background(), user.UserID, order.OrderID)
	require.NoError(suite.T(), err)

	time.Sleep(10 * time.Millisecond)
	_, err = suite.orderService.UpdateOrderStatus(context.Background(), order.OrderID, "bogus")
	require.ErrorIs(suite.T(), err, ErrInvalidStatus)

	after, err := suite.orderService.GetOrder(context.Background(), user.UserID, order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), before.Status, after.Status)
	require.True(suite.T(), before.UpdatedAt.Equal(after.UpdatedAt))
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_OrderNotFound() {
	_, err := suite.orderService.UpdateOrderStatus(context.Background(), "missing", model.OrderStatusShipped)
	require.ErrorIs(suite.T(), err, db.ErrOrderNotFound)
}

func (suite *OrderServiceTestSuite) TestGetAllOrders_IncludesPurchaser() {
	user := suite.createTestUser("owner@example.com")
	suite.placeTestOrder(user.UserID)

	orders, err := suite.orderService.GetAllOrders(context.Background())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 1)
	require.Equal(suite.T(), "owner@example.com", orders[0].User.Email)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
