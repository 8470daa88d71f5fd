package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
)

func TestRecordSalaryTransactionRequest_ToUseCaseInput(t *testing.T) {
	req := RecordSalaryTransactionRequest{
		Date:   "2024-02-01",
		Type:   domain.SalaryTypeAdvance,
		Amount: decimal.NewFromInt(500),
		Notes:  "eid advance",
	}

	input := req.ToUseCaseInput("worker-1")

	if input.WorkerID != "worker-1" {
		t.Fatalf("expected worker id from URL, got %s", input.WorkerID)
	}
	if input.Type != domain.SalaryTypeAdvance || !input.Amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected input: %+v", input)
	}
}

func TestCreateWorkerRequest_ToUseCaseInput(t *testing.T) {
	req := CreateWorkerRequest{
		Name:        "Bashir",
		WorkType:    domain.WorkTypeSalaried,
		JoiningDate: "2024-01-01",
		Salary:      decimal.NewFromInt(30000),
	}

	input := req.ToUseCaseInput()

	if input.Name != "Bashir" || input.WorkType != domain.WorkTypeSalaried {
		t.Fatalf("unexpected input: %+v", input)
	}
	if !input.Salary.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("expected salary to carry over, got %s", input.Salary)
	}
}

func TestNewListResponse(t *testing.T) {
	resp := NewListResponse([]domain.Customer{{ID: "c1"}, {ID: "c2"}})
	if resp.Total != 2 || len(resp.Items) != 2 {
		t.Fatalf("unexpected list response: %+v", resp)
	}

	empty := NewListResponse[domain.Customer](nil)
	if empty.Total != 0 || empty.Items == nil {
		t.Fatalf("expected empty but non-nil items, got %+v", empty)
	}
}
