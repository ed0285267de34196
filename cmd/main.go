package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/api/router"
	"github.com/RoyceAzure/lab/storefront/internal/appcontext"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	// 初始化 handler
	authHandler := handler.NewAuthHandler(app.UserService)
	productHandler := handler.NewProductHandler(app.ProductService)
	cartHandler := handler.NewCartHandler(app.CartService)
	orderHandler := handler.NewOrderHandler(app.OrderService)
	healthHandler := handler.NewHealthHandler(app.DbDao)

	server := api.NewServer(authHandler, productHandler, cartHandler, orderHandler, healthHandler)

	var rateLimit func(http.Handler) http.Handler
	if app.RedisClient != nil && app.Cf.RateLimitRPS > 0 {
		rateLimit = middleware.NewRateLimitMiddleware(app.RedisClient, app.Cf.RateLimitRPS, app.Cf.RateLimitRPS)
	}

	// 設置路由
	r := router.SetupRouter(server, &logger, rateLimit)

	// 設定服務器參數
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}

		if sqlDB, err := app.DbConn.DB(); err == nil {
			sqlDB.Close()
		}
		if app.RedisClient != nil {
			app.RedisClient.Close()
		}

		shutDownCompleted <- struct{}{}
	}()

	logger.Info().Str("port", app.Cf.ServerPort).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server failed")
	}

	<-shutDownCompleted
	logger.Info().Msg("server shutdown completed")
}
