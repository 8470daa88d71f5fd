package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

func TestStatementFromUseCase_EntryRow(t *testing.T) {
	st := &usecase.Statement{
		Direction:      domain.DirectionCustomer,
		Status:         "Due",
		ClosingBalance: decimal.NewFromInt(60),
		Party:          usecase.Party{Name: "Ali Traders", Type: "Customer"},
		Reference:      usecase.Reference{Number: "C-1", Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Type: "Customer ID"},
		Rows: []domain.StatementRow{
			{
				Kind:        domain.RowEntry,
				Index:       1,
				Date:        time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
				Description: "Invoice INV-1",
				Debit:       decimal.NewFromInt(100),
				Credit:      decimal.NewFromInt(40),
				Balance:     decimal.NewFromInt(60),
				HasBalance:  true,
			},
		},
	}

	resp := StatementFromUseCase(st)

	if resp.ClosingBalance != "60" || resp.Status != "Due" {
		t.Fatalf("unexpected header: %+v", resp)
	}
	if resp.Reference.Date != "2024-01-05" {
		t.Fatalf("expected formatted reference date, got %s", resp.Reference.Date)
	}

	row := resp.Rows[0]
	if row.No != "1" || row.Date != "2024-01-05" {
		t.Fatalf("unexpected row identity: %+v", row)
	}
	if row.Debit != "100" || row.Credit != "40" || row.Balance != "60" {
		t.Fatalf("unexpected row amounts: %+v", row)
	}
}

func TestStatementFromUseCase_DashRendering(t *testing.T) {
	st := &usecase.Statement{
		Rows: []domain.StatementRow{
			{
				Kind:        domain.RowEntry,
				Index:       1,
				Date:        time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
				Description: "Payment received",
				Credit:      decimal.NewFromInt(40),
			},
		},
	}

	row := StatementFromUseCase(st).Rows[0]

	if row.Debit != "-" {
		t.Fatalf("expected dash for zero debit, got %q", row.Debit)
	}
	if row.Balance != "-" {
		t.Fatalf("expected dash for absent balance, got %q", row.Balance)
	}
	if row.Credit != "40" {
		t.Fatalf("expected credit to render, got %q", row.Credit)
	}
}

func TestStatementFromUseCase_SummaryRows(t *testing.T) {
	st := &usecase.Statement{
		Rows: []domain.StatementRow{
			{
				Kind:        domain.RowSummary,
				Label:       "1-3",
				Description: "Previous records",
				Debit:       decimal.NewFromInt(300),
				Balance:     decimal.NewFromInt(300),
				HasBalance:  true,
			},
			{
				Kind:        domain.RowSummary,
				Label:       "7-9",
				Description: "Subsequent records",
				Debit:       decimal.NewFromInt(200),
			},
		},
	}

	rows := StatementFromUseCase(st).Rows

	if rows[0].No != "1-3" || rows[0].Date != "-" {
		t.Fatalf("unexpected previous summary: %+v", rows[0])
	}
	if rows[0].Balance != "300" {
		t.Fatalf("expected carried balance on previous summary, got %q", rows[0].Balance)
	}
	if rows[1].No != "7-9" || rows[1].Balance != "-" {
		t.Fatalf("unexpected subsequent summary: %+v", rows[1])
	}
	// Summary totals are numeric even when a side sums to zero; only
	// entry rows dash empty cells.
	if rows[0].Credit != "0" || rows[1].Credit != "0" {
		t.Fatalf("expected zero summary totals to render as 0, got %q and %q", rows[0].Credit, rows[1].Credit)
	}
	if rows[0].Debit != "300" || rows[1].Debit != "200" {
		t.Fatalf("unexpected summary debit totals: %q and %q", rows[0].Debit, rows[1].Debit)
	}
}

func TestStatementFromUseCase_Breakdown(t *testing.T) {
	st := &usecase.Statement{
		Rows: []domain.StatementRow{
			{
				Kind:   domain.RowEntry,
				Index:  1,
				Date:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
				Credit: decimal.NewFromInt(2000),
				Breakdown: &domain.MonthlyBreakdown{
					Month:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
					Present: 24,
					Leave:   2,
					Absent:  5,
				},
			},
		},
	}

	row := StatementFromUseCase(st).Rows[0]

	if row.Breakdown == nil {
		t.Fatal("expected breakdown to be rendered")
	}
	if row.Breakdown.Month != "January 2024" {
		t.Fatalf("expected month name, got %q", row.Breakdown.Month)
	}
	if row.Breakdown.Present != 24 || row.Breakdown.Leave != 2 || row.Breakdown.Absent != 5 {
		t.Fatalf("unexpected breakdown counts: %+v", row.Breakdown)
	}
}
