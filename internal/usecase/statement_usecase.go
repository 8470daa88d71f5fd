package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
)

// Statement is a complete ledger view for one counterparty: the rows the
// invoice renderer prints plus the header details around them.
type Statement struct {
	Direction      domain.Direction      `json:"direction"`
	Rows           []domain.StatementRow `json:"rows"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
	Party          Party                 `json:"party"`
	Reference      Reference             `json:"reference"`
	Status         string                `json:"status"`
	Profile        *domain.Profile       `json:"profile,omitempty"`
}

// Party identifies the counterparty on a statement header.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Contact string `json:"contact,omitempty"`
	Photo   string `json:"photo,omitempty"`
	Type    string `json:"type"`
}

// Reference is the statement's identifying line.
type Reference struct {
	Number string    `json:"number"`
	Date   time.Time `json:"date"`
	Type   string    `json:"type"`
}

// StatementQuery carries the optional date range and row window.
type StatementQuery struct {
	From time.Time
	To   time.Time
	Rows domain.RowRange
}

// StatementDeps bundles the repositories a statement can draw on.
type StatementDeps struct {
	Customers  CustomerRepository
	Suppliers  SupplierRepository
	Workers    WorkerRepository
	Profiles   ProfileRepository
	Sales      SaleRepository
	Purchases  PurchaseRepository
	Expenses   ExpenseRepository
	Categories ExpenseCategoryRepository
	SalaryTxs  SalaryTransactionRepository
	Production ProductionRepository
	Attendance AttendanceRepository
	Inventory  InventoryRepository
	Cache      Cache
	CacheTTL   time.Duration
}

// StatementUseCase builds ledger statements for customers, suppliers/shops
// and workers. The three variants share the builder and differ only in how
// records normalize into entries and in the balance direction.
type StatementUseCase struct {
	deps StatementDeps

	// Now is the clock for synthesized monthly salary entries;
	// overridable in tests.
	Now func() time.Time
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(deps StatementDeps) *StatementUseCase {
	return &StatementUseCase{
		deps: deps,
		Now:  func() time.Time { return time.Now().UTC() },
	}
}

// CustomerStatement builds the ledger of one customer from their sales.
func (uc *StatementUseCase) CustomerStatement(ctx context.Context, customerID string, q StatementQuery) (*Statement, error) {
	customer, err := uc.deps.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if st := uc.fromCache(ctx, "customer", customerID, q); st != nil {
		return st, nil
	}

	sales, err := uc.deps.Sales.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	inventory, err := uc.deps.Inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := domain.SaleEntries(sales, inventory)
	if err != nil {
		return nil, err
	}

	st := uc.assemble(entries, q, domain.DirectionCustomer)
	st.Profile = uc.activeProfile(ctx)
	st.Party = Party{
		Name:    customer.Name,
		Address: customer.Address,
		Contact: customer.Contact,
		Photo:   customer.Photo,
		Type:    "Customer",
	}
	st.Reference = Reference{Number: customer.ID, Date: uc.Now(), Type: "Customer ID"}
	st.Status = "Settled"
	if st.ClosingBalance.IsPositive() {
		st.Status = "Due"
	}

	uc.toCache(ctx, "customer", customerID, q, st)
	return st, nil
}

// SupplierStatement builds the ledger of one supplier or shop. The active
// profile decides the source: business profiles ledger purchases,
// home profiles ledger expenses tagged with the shop id.
func (uc *StatementUseCase) SupplierStatement(ctx context.Context, supplierID string, q StatementQuery) (*Statement, error) {
	supplier, err := uc.deps.Suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if st := uc.fromCache(ctx, "supplier", supplierID, q); st != nil {
		return st, nil
	}

	profileType := domain.ProfileTypeBusiness
	profile, err := uc.deps.Profiles.GetActive(ctx)
	switch {
	case err == nil:
		profileType = profile.Type
	case errors.Is(err, domain.ErrProfileNotFound):
		profile = nil
	default:
		return nil, err
	}

	var entries []domain.TransactionEntry
	partyType := "Supplier"
	if profileType == domain.ProfileTypeHome {
		partyType = "Shop"
		expenses, err := uc.deps.Expenses.ListByShop(ctx, supplierID)
		if err != nil {
			return nil, err
		}
		categories, err := uc.deps.Categories.List(ctx)
		if err != nil {
			return nil, err
		}
		entries, err = domain.ExpenseEntries(expenses, categories)
		if err != nil {
			return nil, err
		}
	} else {
		purchases, err := uc.deps.Purchases.ListBySupplier(ctx, supplierID)
		if err != nil {
			return nil, err
		}
		inventory, err := uc.deps.Inventory.List(ctx)
		if err != nil {
			return nil, err
		}
		entries, err = domain.PurchaseEntries(purchases, inventory)
		if err != nil {
			return nil, err
		}
	}

	st := uc.assemble(entries, q, domain.DirectionPayable)
	st.Profile = profile
	st.Party = Party{
		Name:    supplier.Name,
		Address: supplier.Address,
		Contact: supplier.Contact,
		Photo:   supplier.Photo,
		Type:    partyType,
	}
	st.Reference = Reference{Number: supplier.ID, Date: uc.Now(), Type: partyType + " ID"}
	st.Status = "Settled"
	if st.ClosingBalance.IsPositive() {
		st.Status = "Payable"
	}

	uc.toCache(ctx, "supplier", supplierID, q, st)
	return st, nil
}

// WorkerStatement builds the ledger of one worker: payroll transactions
// plus, depending on work type, production labor credits or synthesized
// monthly salary credits prorated by attendance.
func (uc *StatementUseCase) WorkerStatement(ctx context.Context, workerID string, q StatementQuery) (*Statement, error) {
	worker, err := uc.deps.Workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if st := uc.fromCache(ctx, "worker", workerID, q); st != nil {
		return st, nil
	}

	salaryTxs, err := uc.deps.SalaryTxs.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	entries, err := domain.SalaryEntries(salaryTxs)
	if err != nil {
		return nil, err
	}

	if worker.WorkType == domain.WorkTypeWorkBased {
		batches, err := uc.deps.Production.List(ctx)
		if err != nil {
			return nil, err
		}
		inventory, err := uc.deps.Inventory.List(ctx)
		if err != nil {
			return nil, err
		}
		earned, err := domain.ProductionEntries(batches, workerID, inventory)
		if err != nil {
			return nil, err
		}
		entries = append(entries, earned...)
	} else {
		attendance, err := uc.deps.Attendance.ListByWorker(ctx, workerID)
		if err != nil {
			return nil, err
		}
		earned, err := domain.MonthlySalaryEntries(*worker, attendance, uc.Now())
		if err != nil {
			return nil, err
		}
		entries = append(entries, earned...)
	}

	st := uc.assemble(entries, q, domain.DirectionPayable)
	st.Profile = uc.activeProfile(ctx)
	st.Party = Party{
		Name:    worker.Name,
		Address: worker.Address,
		Contact: worker.Contact,
		Type:    "Worker",
	}
	refNumber := worker.CNIC
	if refNumber == "" {
		refNumber = worker.ID
	}
	refDate := uc.Now()
	if joined, err := domain.ParseDate(worker.JoiningDate); err == nil {
		refDate = joined
	}
	st.Reference = Reference{Number: refNumber, Date: refDate, Type: "Worker ID"}
	st.Status = worker.Status

	uc.toCache(ctx, "worker", workerID, q, st)
	return st, nil
}

// assemble applies the date range and runs the builder.
func (uc *StatementUseCase) assemble(entries []domain.TransactionEntry, q StatementQuery, dir domain.Direction) *Statement {
	filtered := domain.FilterByDateRange(entries, q.From, q.To)

	return &Statement{
		Direction:      dir,
		Rows:           domain.BuildStatement(filtered, q.Rows, dir),
		ClosingBalance: domain.ClosingBalance(filtered, dir),
	}
}

// activeProfile resolves the business header; statements render without
// one when no profile is active.
func (uc *StatementUseCase) activeProfile(ctx context.Context) *domain.Profile {
	profile, err := uc.deps.Profiles.GetActive(ctx)
	if err != nil {
		return nil
	}
	return profile
}

// Statement caching is best effort: a cache miss or failure never fails
// the request. Every key embeds the current cache generation, so a write
// anywhere invalidates all cached statements at once; orphaned entries
// age out with the TTL.

// statementGenerationKey holds the generation embedded in statement keys.
const statementGenerationKey = "statement:generation"

// StatementInvalidator bumps the statement cache generation after a
// write. A nil invalidator, or one built over a nil cache, is a no-op.
type StatementInvalidator struct {
	cache Cache
}

func NewStatementInvalidator(cache Cache) *StatementInvalidator {
	return &StatementInvalidator{cache: cache}
}

// Invalidate orphans every cached statement. Best effort, like the cache
// itself: a failed bump only extends staleness to the TTL bound.
func (inv *StatementInvalidator) Invalidate(ctx context.Context) {
	if inv == nil || inv.cache == nil {
		return
	}
	gen := strconv.FormatInt(time.Now().UnixNano(), 10)
	_ = inv.cache.Set(ctx, statementGenerationKey, []byte(gen), 0)
}

func (uc *StatementUseCase) fromCache(ctx context.Context, kind, id string, q StatementQuery) *Statement {
	if uc.deps.Cache == nil {
		return nil
	}
	raw, err := uc.deps.Cache.Get(ctx, statementCacheKey(kind, id, uc.generation(ctx), q))
	if err != nil || len(raw) == 0 {
		return nil
	}
	var st Statement
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil
	}
	return &st
}

func (uc *StatementUseCase) toCache(ctx context.Context, kind, id string, q StatementQuery, st *Statement) {
	if uc.deps.Cache == nil {
		return
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return
	}
	_ = uc.deps.Cache.Set(ctx, statementCacheKey(kind, id, uc.generation(ctx), q), raw, uc.deps.CacheTTL)
}

func (uc *StatementUseCase) generation(ctx context.Context) string {
	raw, err := uc.deps.Cache.Get(ctx, statementGenerationKey)
	if err != nil || len(raw) == 0 {
		return "0"
	}
	return string(raw)
}

func statementCacheKey(kind, id, generation string, q StatementQuery) string {
	return fmt.Sprintf("statement:%s:%s:%s:%d:%d:%s:%s",
		generation, kind, id, q.From.Unix(), q.To.Unix(),
		boundKey(q.Rows.Start), boundKey(q.Rows.End))
}

// boundKey keeps an absent window bound distinct from an explicit zero:
// nil means unbounded, 0 means a genuinely empty window side.
func boundKey(bound *int) string {
	if bound == nil {
		return "-"
	}
	return strconv.Itoa(*bound)
}
