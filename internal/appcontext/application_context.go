package appcontext

import (
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf             *config.Config
	DbConn         *gorm.DB
	DbDao          *db.DbDao
	RedisClient    *redis.Client
	UserService    service.IUserService
	ProductService service.IProductService
	CartService    service.ICartService
	OrderService   service.IOrderService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	if err := app.setUpDbConn(); err != nil {
		return err
	}
	app.setUpRedisClient()
	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	conn, err := db.GetDbConn(db.ConnConfig{
		Host:     app.Cf.DbHost,
		Port:     app.Cf.DbPort,
		User:     app.Cf.DbUser,
		Password: app.Cf.DbPas,
		DbName:   app.Cf.DbName,
	})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	app.DbConn = conn
	app.DbDao = db.NewDbDao(conn)

	if err := app.DbDao.InitMigrate(); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// setUpRedisClient redis僅供限流使用，未設定REDIS_HOST即不啟用
func (app *ApplicationContext) setUpRedisClient() {
	if app.Cf.RedisHost == "" {
		return
	}
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", app.Cf.RedisHost, app.Cf.RedisPort),
		Password: app.Cf.RedisPassword,
	})
}

func (app *ApplicationContext) setUpServices() {
	userRepo := db.NewUserRepo(app.DbDao)
	productRepo := db.NewProductRepo(app.DbDao)
	cartRepo := db.NewCartRepo(app.DbDao)
	orderRepo := db.NewOrderRepo(app.DbDao)

	app.UserService = service.NewUserService(userRepo)
	app.ProductService = service.NewProductService(productRepo)
	app.CartService = service.NewCartService(cartRepo, productRepo)
	app.OrderService = service.NewOrderService(orderRepo)
}
