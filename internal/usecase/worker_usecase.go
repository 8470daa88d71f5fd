package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
)

// WorkerUseCase handles worker management, payroll transactions and
// attendance.
type WorkerUseCase struct {
	workers    WorkerRepository
	salaryTxs  SalaryTransactionRepository
	attendance AttendanceRepository
	idGen      IDGenerator
	statements *StatementInvalidator
}

// NewWorkerUseCase creates a new WorkerUseCase.
func NewWorkerUseCase(workers WorkerRepository, salaryTxs SalaryTransactionRepository, attendance AttendanceRepository, idGen IDGenerator, statements *StatementInvalidator) *WorkerUseCase {
	return &WorkerUseCase{
		workers:    workers,
		salaryTxs:  salaryTxs,
		attendance: attendance,
		idGen:      idGen,
		statements: statements,
	}
}

// CreateWorkerInput represents input for creating a worker.
type CreateWorkerInput struct {
	Name            string
	FatherName      string
	Contact         string
	Address         string
	CNIC            string
	JoiningDate     string
	WorkType        domain.WorkType
	Salary          decimal.Decimal
	ProductionRates []domain.ProductionRate
	AllowedLeaves   int
	Role            string
	Notes           string
}

// CreateWorker creates a new worker. The joining date is validated at
// write time so statements never meet an unparsable one.
func (uc *WorkerUseCase) CreateWorker(ctx context.Context, input CreateWorkerInput) (*domain.Worker, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if !input.WorkType.IsValid() {
		return nil, domain.ErrInvalidWorkType
	}
	if _, err := domain.ParseDate(input.JoiningDate); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Salary); err != nil {
		return nil, err
	}

	worker := &domain.Worker{
		ID:              uc.idGen.Generate(),
		Name:            input.Name,
		FatherName:      input.FatherName,
		Contact:         input.Contact,
		Address:         input.Address,
		CNIC:            input.CNIC,
		JoiningDate:     input.JoiningDate,
		WorkType:        input.WorkType,
		Salary:          input.Salary,
		ProductionRates: input.ProductionRates,
		AllowedLeaves:   input.AllowedLeaves,
		Status:          domain.StatusActive,
		Role:            input.Role,
		Notes:           input.Notes,
	}
	if err := uc.workers.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// GetWorker retrieves a worker by ID.
func (uc *WorkerUseCase) GetWorker(ctx context.Context, id string) (*domain.Worker, error) {
	return uc.workers.GetByID(ctx, id)
}

// ListWorkers lists all workers.
func (uc *WorkerUseCase) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	return uc.workers.List(ctx)
}

// UpdateWorker updates an existing worker.
func (uc *WorkerUseCase) UpdateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	if err := domain.ValidateName(worker.Name); err != nil {
		return nil, err
	}
	if !worker.WorkType.IsValid() {
		return nil, domain.ErrInvalidWorkType
	}
	if _, err := domain.ParseDate(worker.JoiningDate); err != nil {
		return nil, err
	}
	if err := uc.workers.Update(ctx, worker); err != nil {
		return nil, err
	}
	uc.statements.Invalidate(ctx)
	return worker, nil
}

// DeleteWorker removes a worker.
func (uc *WorkerUseCase) DeleteWorker(ctx context.Context, id string) error {
	if err := uc.workers.Delete(ctx, id); err != nil {
		return err
	}
	uc.statements.Invalidate(ctx)
	return nil
}

// RecordSalaryTransactionInput represents input for one payroll event.
type RecordSalaryTransactionInput struct {
	WorkerID string
	Date     string
	Type     domain.SalaryTransactionType
	Amount   decimal.Decimal
	Notes    string
}

// RecordSalaryTransaction stores a payroll event against a worker. Only
// adjustments may carry a negative amount.
func (uc *WorkerUseCase) RecordSalaryTransaction(ctx context.Context, input RecordSalaryTransactionInput) (*domain.SalaryTransaction, error) {
	if _, err := uc.workers.GetByID(ctx, input.WorkerID); err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidSalaryType
	}
	if input.Type != domain.SalaryTypeAdjustment {
		if err := domain.ValidateAmount(input.Amount); err != nil {
			return nil, err
		}
	}
	if _, err := domain.ParseDate(input.Date); err != nil {
		return nil, err
	}

	tx := &domain.SalaryTransaction{
		ID:       uc.idGen.Generate(),
		WorkerID: input.WorkerID,
		Date:     input.Date,
		Type:     input.Type,
		Amount:   input.Amount,
		Notes:    input.Notes,
	}
	if err := uc.salaryTxs.Create(ctx, tx); err != nil {
		return nil, err
	}
	uc.statements.Invalidate(ctx)
	return tx, nil
}

// ListSalaryTransactions lists payroll events for a worker.
func (uc *WorkerUseCase) ListSalaryTransactions(ctx context.Context, workerID string) ([]domain.SalaryTransaction, error) {
	if _, err := uc.workers.GetByID(ctx, workerID); err != nil {
		return nil, err
	}
	return uc.salaryTxs.ListByWorker(ctx, workerID)
}

// GetAttendance lists attendance records for a worker.
func (uc *WorkerUseCase) GetAttendance(ctx context.Context, workerID string) ([]domain.AttendanceRecord, error) {
	if _, err := uc.workers.GetByID(ctx, workerID); err != nil {
		return nil, err
	}
	return uc.attendance.ListByWorker(ctx, workerID)
}

// SetAttendance replaces a worker's attendance records.
func (uc *WorkerUseCase) SetAttendance(ctx context.Context, workerID string, records []domain.AttendanceRecord) error {
	if _, err := uc.workers.GetByID(ctx, workerID); err != nil {
		return err
	}
	for i := range records {
		records[i].WorkerID = workerID
		if _, err := domain.ParseDate(records[i].Date); err != nil {
			return err
		}
		switch records[i].Status {
		case domain.AttendancePresent, domain.AttendanceAbsent, domain.AttendanceLeave:
		default:
			return fmt.Errorf("invalid attendance status %q", records[i].Status)
		}
	}
	if err := uc.attendance.SetForWorker(ctx, workerID, records); err != nil {
		return err
	}
	uc.statements.Invalidate(ctx)
	return nil
}
