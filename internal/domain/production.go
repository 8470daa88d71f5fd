package domain

import "github.com/shopspring/decimal"

// LaborCost is one worker's payout for a production batch.
type LaborCost struct {
	WorkerID string          `json:"workerId"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// ProductionBatch records a manufacturing run; labor costs feed the
// ledgers of work-based workers.
type ProductionBatch struct {
	ID             string      `json:"id"`
	BatchCode      string      `json:"batchCode"`
	ProductionDate string      `json:"productionDate"`
	FinishedGoods  []LineItem  `json:"finishedGoods,omitempty"`
	LaborCosts     []LaborCost `json:"laborCosts,omitempty"`
}
