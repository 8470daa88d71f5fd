package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/khatadesk/khata/internal/adapter/http/handler"
	"github.com/khatadesk/khata/internal/adapter/http/middleware"
	"github.com/khatadesk/khata/internal/infrastructure/auth"
	"github.com/khatadesk/khata/internal/infrastructure/metrics"
	"github.com/khatadesk/khata/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler   *handler.CustomerHandler
	SupplierHandler   *handler.SupplierHandler
	WorkerHandler     *handler.WorkerHandler
	ProfileHandler    *handler.ProfileHandler
	SaleHandler       *handler.SaleHandler
	PurchaseHandler   *handler.PurchaseHandler
	ExpenseHandler    *handler.ExpenseHandler
	ProductionHandler *handler.ProductionHandler
	InventoryHandler  *handler.InventoryHandler
	AuthHandler       *handler.AuthHandler
	HealthHandler     *handler.HealthHandler

	Logger           zerolog.Logger
	Metrics          *metrics.Metrics
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	JWTManager       *auth.JWTManager
	AuthEnabled      bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.Metrics).Limit)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			if cfg.AuthEnabled {
				r.Use(middleware.Auth(cfg.JWTManager))
			}
			if cfg.IdempotencyStore != nil {
				r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
			}

			r.Route("/customers", func(r chi.Router) {
				r.Post("/", cfg.CustomerHandler.Create)
				r.Get("/", cfg.CustomerHandler.List)
				r.Get("/{id}", cfg.CustomerHandler.Get)
				r.Put("/{id}", cfg.CustomerHandler.Update)
				r.Delete("/{id}", cfg.CustomerHandler.Delete)
				r.Get("/{id}/statement", cfg.CustomerHandler.Statement)
			})

			r.Route("/suppliers", func(r chi.Router) {
				r.Post("/", cfg.SupplierHandler.Create)
				r.Get("/", cfg.SupplierHandler.List)
				r.Get("/{id}", cfg.SupplierHandler.Get)
				r.Put("/{id}", cfg.SupplierHandler.Update)
				r.Delete("/{id}", cfg.SupplierHandler.Delete)
				r.Get("/{id}/statement", cfg.SupplierHandler.Statement)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Post("/", cfg.WorkerHandler.Create)
				r.Get("/", cfg.WorkerHandler.List)
				r.Get("/{id}", cfg.WorkerHandler.Get)
				r.Put("/{id}", cfg.WorkerHandler.Update)
				r.Delete("/{id}", cfg.WorkerHandler.Delete)
				r.Post("/{id}/salary-transactions", cfg.WorkerHandler.RecordSalaryTransaction)
				r.Get("/{id}/salary-transactions", cfg.WorkerHandler.ListSalaryTransactions)
				r.Get("/{id}/attendance", cfg.WorkerHandler.GetAttendance)
				r.Put("/{id}/attendance", cfg.WorkerHandler.SetAttendance)
				r.Get("/{id}/statement", cfg.WorkerHandler.Statement)
			})

			r.Route("/profiles", func(r chi.Router) {
				r.Post("/", cfg.ProfileHandler.Create)
				r.Get("/", cfg.ProfileHandler.List)
				r.Get("/active", cfg.ProfileHandler.GetActive)
				r.Get("/{id}", cfg.ProfileHandler.Get)
				r.Put("/{id}", cfg.ProfileHandler.Update)
				r.Delete("/{id}", cfg.ProfileHandler.Delete)
				r.Post("/{id}/activate", cfg.ProfileHandler.Activate)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Post("/", cfg.SaleHandler.Create)
				r.Get("/", cfg.SaleHandler.List)
				r.Get("/{id}", cfg.SaleHandler.Get)
				r.Delete("/{id}", cfg.SaleHandler.Delete)
			})

			r.Route("/purchases", func(r chi.Router) {
				r.Post("/", cfg.PurchaseHandler.Create)
				r.Get("/", cfg.PurchaseHandler.List)
				r.Get("/{id}", cfg.PurchaseHandler.Get)
				r.Delete("/{id}", cfg.PurchaseHandler.Delete)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", cfg.ExpenseHandler.Create)
				r.Get("/", cfg.ExpenseHandler.List)
				r.Get("/{id}", cfg.ExpenseHandler.Get)
				r.Delete("/{id}", cfg.ExpenseHandler.Delete)
			})

			r.Route("/expense-categories", func(r chi.Router) {
				r.Post("/", cfg.ExpenseHandler.CreateCategory)
				r.Get("/", cfg.ExpenseHandler.ListCategories)
				r.Put("/{id}", cfg.ExpenseHandler.UpdateCategory)
				r.Delete("/{id}", cfg.ExpenseHandler.DeleteCategory)
			})

			r.Route("/production", func(r chi.Router) {
				r.Post("/", cfg.ProductionHandler.Create)
				r.Get("/", cfg.ProductionHandler.List)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Post("/", cfg.InventoryHandler.Create)
				r.Get("/", cfg.InventoryHandler.List)
				r.Get("/{id}", cfg.InventoryHandler.Get)
				r.Put("/{id}", cfg.InventoryHandler.Update)
				r.Delete("/{id}", cfg.InventoryHandler.Delete)
			})
		})
	})

	return r
}
