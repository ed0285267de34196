package api

import (
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
)

type Server struct {
	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	HealthHandler  *handler.HealthHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	return &Server{
		AuthHandler:    authHandler,
		ProductHandler: productHandler,
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		HealthHandler:  healthHandler,
	}
}
