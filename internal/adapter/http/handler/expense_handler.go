package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khatadesk/khata/internal/adapter/http/dto"
	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// ExpenseService defines the behavior needed by ExpenseHandler.
type ExpenseService interface {
	RecordExpense(ctx context.Context, input usecase.RecordExpenseInput) (*domain.Expense, error)
	GetExpense(ctx context.Context, id string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, shopID string) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*domain.ExpenseCategory, error)
	ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	UpdateCategory(ctx context.Context, category *domain.ExpenseCategory) error
	DeleteCategory(ctx context.Context, id string) error
}

// ExpenseHandler handles household expense and expense category requests.
type ExpenseHandler struct {
	expenseUC ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseUC ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseUC: expenseUC}
}

// Create records a new expense.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	expense, err := h.expenseUC.RecordExpense(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record expense", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, expense)
}

// Get retrieves an expense by ID.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	expense, err := h.expenseUC.GetExpense(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get expense", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

// List lists expenses, optionally filtered by shop via ?shopId=.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	shopID := r.URL.Query().Get("shopId")

	expenses, err := h.expenseUC.ListExpenses(r.Context(), shopID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(expenses))
}

// Delete removes an expense.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.expenseUC.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete expense", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory creates a new expense category.
func (h *ExpenseHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.expenseUC.CreateCategory(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create category", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// ListCategories lists all expense categories.
func (h *ExpenseHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.expenseUC.ListCategories(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list categories", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(categories))
}

// UpdateCategory updates an expense category.
func (h *ExpenseHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.ExpenseCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	category.ID = chi.URLParam(r, "id")

	if err := h.expenseUC.UpdateCategory(r.Context(), &category); err != nil {
		writeError(w, mapDomainError(err), "failed to update category", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// DeleteCategory removes an expense category.
func (h *ExpenseHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.expenseUC.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete category", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
