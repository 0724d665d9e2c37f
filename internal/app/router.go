package app

import (
	"github.com/avc/starstore/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// API витрины
	r.Post("/api/orders/create", deps.handlers.orders.CreateBuyOrder)
	r.Post("/api/sell-orders", deps.handlers.orders.CreateSellOrder)
	r.Get("/api/wallet-address", deps.handlers.wallet.GetWalletAddress)
	r.Get("/api/transactions/{userID}", deps.handlers.orders.GetTransactions)
	r.Get("/api/referrals/{userID}", deps.handlers.referrals.GetSummary)
	r.Get("/api/notifications", deps.handlers.notifications.List)
}
