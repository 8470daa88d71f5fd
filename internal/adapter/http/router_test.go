package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/khatadesk/khata/internal/adapter/http/handler"
	apimiddleware "github.com/khatadesk/khata/internal/adapter/http/middleware"
	"github.com/khatadesk/khata/internal/infrastructure/auth"
	"github.com/khatadesk/khata/internal/usecase"
	"github.com/khatadesk/khata/internal/usecase/mocks"
)

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	idGen := mocks.NewMockIDGenerator("id")

	customerRepo := mocks.NewMockCustomerRepository()
	supplierRepo := mocks.NewMockSupplierRepository()
	workerRepo := mocks.NewMockWorkerRepository()
	profileRepo := mocks.NewMockProfileRepository()
	saleRepo := mocks.NewMockSaleRepository()
	purchaseRepo := mocks.NewMockPurchaseRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	categoryRepo := mocks.NewMockExpenseCategoryRepository()
	salaryRepo := mocks.NewMockSalaryTransactionRepository()
	productionRepo := mocks.NewMockProductionRepository()
	attendanceRepo := mocks.NewMockAttendanceRepository()
	inventoryRepo := mocks.NewMockInventoryRepository()
	userRepo := mocks.NewMockUserRepository()

	statementUC := usecase.NewStatementUseCase(usecase.StatementDeps{
		Customers:  customerRepo,
		Suppliers:  supplierRepo,
		Workers:    workerRepo,
		Profiles:   profileRepo,
		Sales:      saleRepo,
		Purchases:  purchaseRepo,
		Expenses:   expenseRepo,
		Categories: categoryRepo,
		SalaryTxs:  salaryRepo,
		Production: productionRepo,
		Attendance: attendanceRepo,
		Inventory:  inventoryRepo,
	})

	jwtManager := auth.NewJWTManager("router-test-secret", time.Hour)

	cfg := RouterConfig{
		CustomerHandler:   handler.NewCustomerHandler(usecase.NewCustomerUseCase(customerRepo, idGen), statementUC),
		SupplierHandler:   handler.NewSupplierHandler(usecase.NewSupplierUseCase(supplierRepo, idGen), statementUC),
		WorkerHandler:     handler.NewWorkerHandler(usecase.NewWorkerUseCase(workerRepo, salaryRepo, attendanceRepo, idGen, nil), statementUC),
		ProfileHandler:    handler.NewProfileHandler(usecase.NewProfileUseCase(profileRepo, idGen, nil)),
		SaleHandler:       handler.NewSaleHandler(usecase.NewSaleUseCase(saleRepo, customerRepo, idGen, nil)),
		PurchaseHandler:   handler.NewPurchaseHandler(usecase.NewPurchaseUseCase(purchaseRepo, supplierRepo, idGen, nil)),
		ExpenseHandler:    handler.NewExpenseHandler(usecase.NewExpenseUseCase(expenseRepo, categoryRepo, supplierRepo, idGen, nil)),
		ProductionHandler: handler.NewProductionHandler(usecase.NewProductionUseCase(productionRepo, workerRepo, idGen, nil)),
		InventoryHandler:  handler.NewInventoryHandler(usecase.NewInventoryUseCase(inventoryRepo, idGen)),
		AuthHandler:       handler.NewAuthHandler(usecase.NewUserUseCase(userRepo, idGen), jwtManager, nil),
		HealthHandler:     &handler.HealthHandler{},
		Logger:            zerolog.Nop(),
		JWTManager:        jwtManager,
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimitRPS = 1
		cfg.RateLimitBurst = 1
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
		cfg.IdempotencyTTL = time.Hour
	}))

	body := `{"name":"Ali Traders","contact":"0300-1111111"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatal("expected idempotency store to be used")
	}
}

func TestNewRouter_AuthGuardsAPIRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.AuthEnabled = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", rec.Code)
	}

	// Login stays reachable so users can obtain a token; an empty login
	// is rejected by the use case, not by the auth middleware.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), "authenticate") {
		t.Fatalf("expected login route to reach the auth handler, got %q", rec.Body.String())
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Router")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/auth/login",
		"POST /api/v1/customers/",
		"GET /api/v1/customers/{id}/statement",
		"GET /api/v1/suppliers/{id}/statement",
		"POST /api/v1/workers/{id}/salary-transactions",
		"PUT /api/v1/workers/{id}/attendance",
		"GET /api/v1/workers/{id}/statement",
		"POST /api/v1/profiles/{id}/activate",
		"POST /api/v1/sales/",
		"POST /api/v1/purchases/",
		"POST /api/v1/expenses/",
		"POST /api/v1/expense-categories/",
		"POST /api/v1/production/",
		"POST /api/v1/inventory/",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}
