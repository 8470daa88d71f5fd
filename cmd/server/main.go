package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/khatadesk/khata/internal/adapter/http"
	"github.com/khatadesk/khata/internal/adapter/http/handler"
	postgresRepo "github.com/khatadesk/khata/internal/adapter/repository/postgres"
	redisRepo "github.com/khatadesk/khata/internal/adapter/repository/redis"
	"github.com/khatadesk/khata/internal/infrastructure/auth"
	"github.com/khatadesk/khata/internal/infrastructure/config"
	"github.com/khatadesk/khata/internal/infrastructure/logger"
	"github.com/khatadesk/khata/internal/infrastructure/metrics"
	"github.com/khatadesk/khata/internal/infrastructure/postgres"
	"github.com/khatadesk/khata/internal/infrastructure/redis"
	"github.com/khatadesk/khata/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zlog := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = zlog

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	zlog.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, zlog); err != nil {
		zlog.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	zlog.Info().Msg("connected to redis")

	m := metrics.New()

	retrier := postgresRepo.NewRetrier(zlog)
	store := postgresRepo.NewCollectionStore(pool, retrier)
	idGen := postgresRepo.NewULIDGenerator()

	customerRepo := postgresRepo.NewCustomerRepository(store)
	supplierRepo := postgresRepo.NewSupplierRepository(store)
	workerRepo := postgresRepo.NewWorkerRepository(store)
	profileRepo := postgresRepo.NewProfileRepository(store)
	saleRepo := postgresRepo.NewSaleRepository(store)
	purchaseRepo := postgresRepo.NewPurchaseRepository(store)
	expenseRepo := postgresRepo.NewExpenseRepository(store)
	categoryRepo := postgresRepo.NewExpenseCategoryRepository(store)
	salaryRepo := postgresRepo.NewSalaryTransactionRepository(store)
	productionRepo := postgresRepo.NewProductionRepository(store)
	attendanceRepo := postgresRepo.NewAttendanceRepository(store)
	inventoryRepo := postgresRepo.NewInventoryRepository(store)
	userRepo := postgresRepo.NewUserRepository(store)

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, idGen)
	invalidator := usecase.NewStatementInvalidator(cache)
	workerUC := usecase.NewWorkerUseCase(workerRepo, salaryRepo, attendanceRepo, idGen, invalidator)
	profileUC := usecase.NewProfileUseCase(profileRepo, idGen, invalidator)
	saleUC := usecase.NewSaleUseCase(saleRepo, customerRepo, idGen, invalidator)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo, supplierRepo, idGen, invalidator)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, categoryRepo, supplierRepo, idGen, invalidator)
	productionUC := usecase.NewProductionUseCase(productionRepo, workerRepo, idGen, invalidator)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, idGen)
	userUC := usecase.NewUserUseCase(userRepo, idGen)
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
		Cache:      cache,
		CacheTTL:   cfg.StatementCacheTTL,
	})

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:   handler.NewCustomerHandler(customerUC, statementUC),
		SupplierHandler:   handler.NewSupplierHandler(supplierUC, statementUC),
		WorkerHandler:     handler.NewWorkerHandler(workerUC, statementUC),
		ProfileHandler:    handler.NewProfileHandler(profileUC),
		SaleHandler:       handler.NewSaleHandler(saleUC),
		PurchaseHandler:   handler.NewPurchaseHandler(purchaseUC),
		ExpenseHandler:    handler.NewExpenseHandler(expenseUC),
		ProductionHandler: handler.NewProductionHandler(productionUC),
		InventoryHandler:  handler.NewInventoryHandler(inventoryUC),
		AuthHandler:       handler.NewAuthHandler(userUC, jwtManager, m),
		HealthHandler:     handler.NewHealthHandler(pool, redisClient),

		Logger:           zlog,
		Metrics:          m,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		JWTManager:       jwtManager,
		AuthEnabled:      cfg.AuthEnabled,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		zlog.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal().Err(err).Msg("server forced to shutdown")
	}

	zlog.Info().Msg("server stopped")
}
