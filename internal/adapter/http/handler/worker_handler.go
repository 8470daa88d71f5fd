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

// WorkerService defines the behavior needed by WorkerHandler.
type WorkerService interface {
	CreateWorker(ctx context.Context, input usecase.CreateWorkerInput) (*domain.Worker, error)
	GetWorker(ctx context.Context, id string) (*domain.Worker, error)
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	UpdateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	DeleteWorker(ctx context.Context, id string) error
	RecordSalaryTransaction(ctx context.Context, input usecase.RecordSalaryTransactionInput) (*domain.SalaryTransaction, error)
	ListSalaryTransactions(ctx context.Context, workerID string) ([]domain.SalaryTransaction, error)
	GetAttendance(ctx context.Context, workerID string) ([]domain.AttendanceRecord, error)
	SetAttendance(ctx context.Context, workerID string, records []domain.AttendanceRecord) error
}

// WorkerStatementService builds worker statements.
type WorkerStatementService interface {
	WorkerStatement(ctx context.Context, workerID string, q usecase.StatementQuery) (*usecase.Statement, error)
}

// WorkerHandler handles worker-related HTTP requests: the worker records
// themselves plus their payroll transactions and attendance.
type WorkerHandler struct {
	workerUC    WorkerService
	statementUC WorkerStatementService
}

// NewWorkerHandler creates a new WorkerHandler.
func NewWorkerHandler(workerUC WorkerService, statementUC WorkerStatementService) *WorkerHandler {
	return &WorkerHandler{workerUC: workerUC, statementUC: statementUC}
}

// Create creates a new worker.
func (h *WorkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	worker, err := h.workerUC.CreateWorker(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create worker", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, worker)
}

// Get retrieves a worker by ID.
func (h *WorkerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	worker, err := h.workerUC.GetWorker(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get worker", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, worker)
}

// List lists all workers.
func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerUC.ListWorkers(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list workers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(workers))
}

// Update updates a worker.
func (h *WorkerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var worker domain.Worker
	if err := json.NewDecoder(r.Body).Decode(&worker); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	worker.ID = chi.URLParam(r, "id")

	updated, err := h.workerUC.UpdateWorker(r.Context(), &worker)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update worker", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a worker.
func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workerUC.DeleteWorker(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete worker", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordSalaryTransaction stores a payroll event against the worker.
func (h *WorkerHandler) RecordSalaryTransaction(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	var req dto.RecordSalaryTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.workerUC.RecordSalaryTransaction(r.Context(), req.ToUseCaseInput(workerID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record salary transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

// ListSalaryTransactions lists the worker's payroll events.
func (h *WorkerHandler) ListSalaryTransactions(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	txs, err := h.workerUC.ListSalaryTransactions(r.Context(), workerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list salary transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(txs))
}

// GetAttendance lists the worker's attendance records.
func (h *WorkerHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	records, err := h.workerUC.GetAttendance(r.Context(), workerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get attendance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(records))
}

// SetAttendance replaces the worker's attendance records.
func (h *WorkerHandler) SetAttendance(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	var req dto.SetAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.workerUC.SetAttendance(r.Context(), workerID, req.Records); err != nil {
		writeError(w, mapDomainError(err), "failed to set attendance", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Statement builds the worker's ledger statement.
func (h *WorkerHandler) Statement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	q, err := parseStatementQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid statement query", err.Error())
		return
	}

	st, err := h.statementUC.WorkerStatement(r.Context(), id, q)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(st))
}
