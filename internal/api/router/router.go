package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger, rateLimit func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))
	if rateLimit != nil {
		r.Use(rateLimit)
	}

	r.Get("/health", server.HealthHandler.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", server.AuthHandler.Register)
		r.Post("/login", server.AuthHandler.Login)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", server.ProductHandler.List)
		r.Post("/", server.ProductHandler.Create)
		r.Get("/{id}", server.ProductHandler.Get)
		r.Put("/{id}", server.ProductHandler.Update)
		r.Delete("/{id}", server.ProductHandler.Delete)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", server.CartHandler.GetCart)
		r.Post("/", server.CartHandler.AddItem)
		r.Put("/{id}", server.CartHandler.UpdateItem)
		r.Delete("/{id}", server.CartHandler.DeleteItem)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", server.OrderHandler.PlaceOrder)
		r.Get("/", server.OrderHandler.ListOrders)
		r.Get("/{id}", server.OrderHandler.GetOrder)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/orders", server.OrderHandler.ListAllOrders)
		r.Put("/orders/{id}/status", server.OrderHandler.UpdateStatus)
	})

	return r
}
