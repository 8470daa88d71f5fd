package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/khatadesk/khata/internal/domain"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	CreateFunc  func(ctx context.Context, customer *domain.Customer) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Customer, error)
	UpdateFunc  func(ctx context.Context, customer *domain.Customer) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context) ([]domain.Customer, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[string]*domain.Customer)}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(m.customers, id)
	return nil
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, *c)
	}
	return out, nil
}

// MockSupplierRepository is a mock implementation of SupplierRepository.
type MockSupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[string]*domain.Supplier

	CreateFunc  func(ctx context.Context, supplier *domain.Supplier) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Supplier, error)
	UpdateFunc  func(ctx context.Context, supplier *domain.Supplier) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context) ([]domain.Supplier, error)
}

func NewMockSupplierRepository() *MockSupplierRepository {
	return &MockSupplierRepository{suppliers: make(map[string]*domain.Supplier)}
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, supplier)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.suppliers[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSupplierNotFound
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, supplier)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.suppliers[supplier.ID]; !ok {
		return domain.ErrSupplierNotFound
	}
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.suppliers[id]; !ok {
		return domain.ErrSupplierNotFound
	}
	delete(m.suppliers, id)
	return nil
}

func (m *MockSupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Supplier, 0, len(m.suppliers))
	for _, s := range m.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

// MockWorkerRepository is a mock implementation of WorkerRepository.
type MockWorkerRepository struct {
	mu      sync.RWMutex
	workers map[string]*domain.Worker

	CreateFunc  func(ctx context.Context, worker *domain.Worker) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Worker, error)
	UpdateFunc  func(ctx context.Context, worker *domain.Worker) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context) ([]domain.Worker, error)
}

func NewMockWorkerRepository() *MockWorkerRepository {
	return &MockWorkerRepository{workers: make(map[string]*domain.Worker)}
}

func (m *MockWorkerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, worker)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workers[worker.ID] = worker
	return nil
}

func (m *MockWorkerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.workers[id]; ok {
		return w, nil
	}
	return nil, domain.ErrWorkerNotFound
}

func (m *MockWorkerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, worker)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workers[worker.ID]; !ok {
		return domain.ErrWorkerNotFound
	}
	m.workers[worker.ID] = worker
	return nil
}

func (m *MockWorkerRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workers[id]; !ok {
		return domain.ErrWorkerNotFound
	}
	delete(m.workers, id)
	return nil
}

func (m *MockWorkerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Worker, 0, len(m.workers))
	for _, w := range m.workers {
		out = append(out, *w)
	}
	return out, nil
}

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile

	CreateFunc    func(ctx context.Context, profile *domain.Profile) error
	GetByIDFunc   func(ctx context.Context, id string) (*domain.Profile, error)
	UpdateFunc    func(ctx context.Context, profile *domain.Profile) error
	DeleteFunc    func(ctx context.Context, id string) error
	ListFunc      func(ctx context.Context) ([]domain.Profile, error)
	GetActiveFunc func(ctx context.Context) (*domain.Profile, error)
	ActivateFunc  func(ctx context.Context, id string) error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{profiles: make(map[string]*domain.Profile)}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, profile)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[profile.ID]; !ok {
		return domain.ErrProfileNotFound
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(m.profiles, id)
	return nil
}

func (m *MockProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (m *MockProfileRepository) GetActive(ctx context.Context) (*domain.Profile, error) {
	if m.GetActiveFunc != nil {
		return m.GetActiveFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.profiles {
		if p.Active {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (m *MockProfileRepository) Activate(ctx context.Context, id string) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return domain.ErrProfileNotFound
	}
	for _, p := range m.profiles {
		p.Active = p.ID == id
	}
	return nil
}

// MockSaleRepository is a mock implementation of SaleRepository.
type MockSaleRepository struct {
	mu    sync.RWMutex
	sales map[string]*domain.Sale

	CreateFunc         func(ctx context.Context, sale *domain.Sale) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Sale, error)
	DeleteFunc         func(ctx context.Context, id string) error
	ListFunc           func(ctx context.Context) ([]domain.Sale, error)
	ListByCustomerFunc func(ctx context.Context, customerID string) ([]domain.Sale, error)
}

func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{sales: make(map[string]*domain.Sale)}
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sale)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales[sale.ID] = sale
	return nil
}

func (m *MockSaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sales[id]; ok {
		return s, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockSaleRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sales[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(m.sales, id)
	return nil
}

func (m *MockSaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Sale, 0, len(m.sales))
	for _, s := range m.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (m *MockSaleRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Sale, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Sale
	for _, s := range m.sales {
		if s.CustomerID == customerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

// MockPurchaseRepository is a mock implementation of PurchaseRepository.
type MockPurchaseRepository struct {
	mu        sync.RWMutex
	purchases map[string]*domain.Purchase

	CreateFunc         func(ctx context.Context, purchase *domain.Purchase) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Purchase, error)
	DeleteFunc         func(ctx context.Context, id string) error
	ListFunc           func(ctx context.Context) ([]domain.Purchase, error)
	ListBySupplierFunc func(ctx context.Context, supplierID string) ([]domain.Purchase, error)
}

func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{purchases: make(map[string]*domain.Purchase)}
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, purchase)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purchases[purchase.ID] = purchase
	return nil
}

func (m *MockPurchaseRepository) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.purchases[id]; ok {
		return p, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.purchases[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(m.purchases, id)
	return nil
}

func (m *MockPurchaseRepository) List(ctx context.Context) ([]domain.Purchase, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Purchase, 0, len(m.purchases))
	for _, p := range m.purchases {
		out = append(out, *p)
	}
	return out, nil
}

func (m *MockPurchaseRepository) ListBySupplier(ctx context.Context, supplierID string) ([]domain.Purchase, error) {
	if m.ListBySupplierFunc != nil {
		return m.ListBySupplierFunc(ctx, supplierID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Purchase
	for _, p := range m.purchases {
		if p.SupplierID == supplierID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*domain.Expense

	CreateFunc     func(ctx context.Context, expense *domain.Expense) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Expense, error)
	DeleteFunc     func(ctx context.Context, id string) error
	ListFunc       func(ctx context.Context) ([]domain.Expense, error)
	ListByShopFunc func(ctx context.Context, shopID string) ([]domain.Expense, error)
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{expenses: make(map[string]*domain.Expense)}
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.expenses[id]; ok {
		return e, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(m.expenses, id)
	return nil
}

func (m *MockExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Expense, 0, len(m.expenses))
	for _, e := range m.expenses {
		out = append(out, *e)
	}
	return out, nil
}

func (m *MockExpenseRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Expense, error) {
	if m.ListByShopFunc != nil {
		return m.ListByShopFunc(ctx, shopID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Expense
	for _, e := range m.expenses {
		if e.ShopID == shopID {
			out = append(out, *e)
		}
	}
	return out, nil
}

// MockExpenseCategoryRepository is a mock implementation of ExpenseCategoryRepository.
type MockExpenseCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.ExpenseCategory

	CreateFunc func(ctx context.Context, category *domain.ExpenseCategory) error
	UpdateFunc func(ctx context.Context, category *domain.ExpenseCategory) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]domain.ExpenseCategory, error)
}

func NewMockExpenseCategoryRepository() *MockExpenseCategoryRepository {
	return &MockExpenseCategoryRepository{categories: make(map[string]*domain.ExpenseCategory)}
}

func (m *MockExpenseCategoryRepository) Create(ctx context.Context, category *domain.ExpenseCategory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *MockExpenseCategoryRepository) Update(ctx context.Context, category *domain.ExpenseCategory) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		return domain.ErrRecordNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *MockExpenseCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *MockExpenseCategoryRepository) List(ctx context.Context) ([]domain.ExpenseCategory, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ExpenseCategory, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

// MockSalaryTransactionRepository is a mock implementation of SalaryTransactionRepository.
type MockSalaryTransactionRepository struct {
	mu  sync.RWMutex
	txs []domain.SalaryTransaction

	CreateFunc       func(ctx context.Context, tx *domain.SalaryTransaction) error
	ListFunc         func(ctx context.Context) ([]domain.SalaryTransaction, error)
	ListByWorkerFunc func(ctx context.Context, workerID string) ([]domain.SalaryTransaction, error)
}

func NewMockSalaryTransactionRepository() *MockSalaryTransactionRepository {
	return &MockSalaryTransactionRepository{}
}

func (m *MockSalaryTransactionRepository) Create(ctx context.Context, tx *domain.SalaryTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = append(m.txs, *tx)
	return nil
}

func (m *MockSalaryTransactionRepository) List(ctx context.Context) ([]domain.SalaryTransaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.SalaryTransaction, len(m.txs))
	copy(out, m.txs)
	return out, nil
}

func (m *MockSalaryTransactionRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.SalaryTransaction, error) {
	if m.ListByWorkerFunc != nil {
		return m.ListByWorkerFunc(ctx, workerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.SalaryTransaction
	for _, tx := range m.txs {
		if tx.WorkerID == workerID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// MockProductionRepository is a mock implementation of ProductionRepository.
type MockProductionRepository struct {
	mu      sync.RWMutex
	batches []domain.ProductionBatch

	CreateFunc func(ctx context.Context, batch *domain.ProductionBatch) error
	ListFunc   func(ctx context.Context) ([]domain.ProductionBatch, error)
}

func NewMockProductionRepository() *MockProductionRepository {
	return &MockProductionRepository{}
}

func (m *MockProductionRepository) Create(ctx context.Context, batch *domain.ProductionBatch) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, batch)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, *batch)
	return nil
}

func (m *MockProductionRepository) List(ctx context.Context) ([]domain.ProductionBatch, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ProductionBatch, len(m.batches))
	copy(out, m.batches)
	return out, nil
}

// MockAttendanceRepository is a mock implementation of AttendanceRepository.
type MockAttendanceRepository struct {
	mu      sync.RWMutex
	records map[string][]domain.AttendanceRecord

	ListByWorkerFunc func(ctx context.Context, workerID string) ([]domain.AttendanceRecord, error)
	SetForWorkerFunc func(ctx context.Context, workerID string, records []domain.AttendanceRecord) error
}

func NewMockAttendanceRepository() *MockAttendanceRepository {
	return &MockAttendanceRepository{records: make(map[string][]domain.AttendanceRecord)}
}

func (m *MockAttendanceRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.AttendanceRecord, error) {
	if m.ListByWorkerFunc != nil {
		return m.ListByWorkerFunc(ctx, workerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.AttendanceRecord, len(m.records[workerID]))
	copy(out, m.records[workerID])
	return out, nil
}

func (m *MockAttendanceRepository) SetForWorker(ctx context.Context, workerID string, records []domain.AttendanceRecord) error {
	if m.SetForWorkerFunc != nil {
		return m.SetForWorkerFunc(ctx, workerID, records)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[workerID] = records
	return nil
}

// MockInventoryRepository is a mock implementation of InventoryRepository.
type MockInventoryRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.InventoryItem

	CreateFunc  func(ctx context.Context, item *domain.InventoryItem) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.InventoryItem, error)
	UpdateFunc  func(ctx context.Context, item *domain.InventoryItem) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context) ([]domain.InventoryItem, error)
}

func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{items: make(map[string]*domain.InventoryItem)}
}

func (m *MockInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
	return nil
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if it, ok := m.items[id]; ok {
		return it, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; !ok {
		return domain.ErrRecordNotFound
	}
	m.items[item.ID] = item
	return nil
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *MockInventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.InventoryItem, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, *it)
	}
	return out, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	ListFunc       func(ctx context.Context) ([]domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u := *user
	m.users[user.ID] = &u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{data: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIDGenerator yields sequential IDs with a fixed prefix.
type MockIDGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewMockIDGenerator(prefix string) *MockIDGenerator {
	return &MockIDGenerator{prefix: prefix}
}

func (m *MockIDGenerator) Generate() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return m.prefix + "-" + strconv.Itoa(m.n)
}
