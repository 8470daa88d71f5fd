package usecase

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
)

// ProductionUseCase handles production batches.
type ProductionUseCase struct {
	production ProductionRepository
	workers    WorkerRepository
	idGen      IDGenerator
	statements *StatementInvalidator
}

// NewProductionUseCase creates a new ProductionUseCase.
func NewProductionUseCase(production ProductionRepository, workers WorkerRepository, idGen IDGenerator, statements *StatementInvalidator) *ProductionUseCase {
	return &ProductionUseCase{production: production, workers: workers, idGen: idGen, statements: statements}
}

// RecordBatchInput represents input for recording a production batch.
type RecordBatchInput struct {
	BatchCode      string
	ProductionDate string
	FinishedGoods  []domain.LineItem
	LaborCosts     []domain.LaborCost
}

// RecordBatch stores a production run. Every labor cost must reference an
// existing worker and carry a non-negative cost.
func (uc *ProductionUseCase) RecordBatch(ctx context.Context, input RecordBatchInput) (*domain.ProductionBatch, error) {
	if _, err := domain.ParseDate(input.ProductionDate); err != nil {
		return nil, err
	}
	for _, lc := range input.LaborCosts {
		if _, err := uc.workers.GetByID(ctx, lc.WorkerID); err != nil {
			return nil, err
		}
		if err := domain.ValidateAmount(lc.Cost); err != nil {
			return nil, err
		}
	}

	batch := &domain.ProductionBatch{
		ID:             uc.idGen.Generate(),
		BatchCode:      input.BatchCode,
		ProductionDate: input.ProductionDate,
		FinishedGoods:  input.FinishedGoods,
		LaborCosts:     input.LaborCosts,
	}
	if err := uc.production.Create(ctx, batch); err != nil {
		return nil, err
	}
	uc.statements.Invalidate(ctx)
	return batch, nil
}

// ListBatches lists all production batches.
func (uc *ProductionUseCase) ListBatches(ctx context.Context) ([]domain.ProductionBatch, error) {
	return uc.production.List(ctx)
}
