package usecase

import (
	"context"
	"time"

	"github.com/khatadesk/khata/internal/domain"
)

// CollectionStore is the raw persistence surface: a named record array
// loaded and saved whole. out must be a pointer to a slice; a missing
// collection loads as empty.
type CollectionStore interface {
	Load(ctx context.Context, name string, out any) error
	Save(ctx context.Context, name string, records any) error
}

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Customer, error)
}

// SupplierRepository defines data access for suppliers/shops.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Supplier, error)
}

// WorkerRepository defines data access for workers.
type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Worker, error)
}

// ProfileRepository defines data access for business profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Profile, error)
	// GetActive returns the profile whose active flag is set, or
	// domain.ErrProfileNotFound when none is.
	GetActive(ctx context.Context) (*domain.Profile, error)
	// Activate sets the active flag on id and clears it everywhere else.
	Activate(ctx context.Context, id string) error
}

// SaleRepository defines data access for sales invoices.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Sale, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Sale, error)
}

// PurchaseRepository defines data access for purchase bills.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	GetByID(ctx context.Context, id string) (*domain.Purchase, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Purchase, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]domain.Purchase, error)
}

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Expense, error)
	ListByShop(ctx context.Context, shopID string) ([]domain.Expense, error)
}

// ExpenseCategoryRepository defines data access for expense categories.
type ExpenseCategoryRepository interface {
	Create(ctx context.Context, category *domain.ExpenseCategory) error
	Update(ctx context.Context, category *domain.ExpenseCategory) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.ExpenseCategory, error)
}

// SalaryTransactionRepository defines data access for payroll events.
type SalaryTransactionRepository interface {
	Create(ctx context.Context, tx *domain.SalaryTransaction) error
	List(ctx context.Context) ([]domain.SalaryTransaction, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.SalaryTransaction, error)
}

// ProductionRepository defines data access for production batches.
type ProductionRepository interface {
	Create(ctx context.Context, batch *domain.ProductionBatch) error
	List(ctx context.Context) ([]domain.ProductionBatch, error)
}

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	ListByWorker(ctx context.Context, workerID string) ([]domain.AttendanceRecord, error)
	// SetForWorker replaces the worker's attendance records, leaving other
	// workers' records untouched.
	SetForWorker(ctx context.Context, workerID string, records []domain.AttendanceRecord) error
}

// InventoryRepository defines data access for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.InventoryItem, error)
}

// UserRepository defines data access for API users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
