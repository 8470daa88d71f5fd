package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInventory = []InventoryItem{
	{ID: "it-1", Name: "Sugar"},
	{ID: "it-2", Name: "Flour"},
}

func TestSaleEntries(t *testing.T) {
	sales := []Sale{
		{
			ID:             "s-1",
			InvoiceNumber:  "INV-7",
			InvoiceDate:    "2024-03-01T10:00:00Z",
			GrandTotal:     dec(900),
			AmountReceived: dec(400),
			Items: []LineItem{
				{ItemID: "it-1", Quantity: 2},
				{ItemID: "missing", Quantity: 1},
			},
		},
	}

	entries, err := SaleEntries(sales, testInventory)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Sale #INV-7: Sugar (x2), Item (x1)", entries[0].Description)
	assert.True(t, entries[0].Debit.Equal(dec(900)))
	assert.True(t, entries[0].Credit.IsZero())

	assert.Equal(t, "Payment for #INV-7", entries[1].Description)
	assert.True(t, entries[1].Credit.Equal(dec(400)))
}

func TestSaleEntries_SkipsZeroAmounts(t *testing.T) {
	sales := []Sale{
		{ID: "s-1", InvoiceNumber: "INV-1", InvoiceDate: "2024-03-01", GrandTotal: dec(100)},
		{ID: "s-2", InvoiceNumber: "INV-2", InvoiceDate: "2024-03-02", AmountReceived: dec(50)},
		{ID: "s-3", InvoiceNumber: "INV-3", InvoiceDate: "2024-03-03"},
	}

	entries, err := SaleEntries(sales, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Debit.Equal(dec(100)))
	assert.True(t, entries[1].Credit.Equal(dec(50)))
}

func TestSaleEntries_BadDate(t *testing.T) {
	sales := []Sale{{ID: "s-1", InvoiceDate: "yesterday", GrandTotal: dec(10)}}

	_, err := SaleEntries(sales, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateUnparsable)
	assert.Contains(t, err.Error(), "s-1")
}

func TestPurchaseEntries_PolaritySwapped(t *testing.T) {
	purchases := []Purchase{
		{
			ID:           "p-1",
			BillNumber:   "B-3",
			PurchaseDate: "2024-03-05",
			GrandTotal:   dec(700),
			AmountPaid:   dec(300),
			Items:        []LineItem{{ItemID: "it-2", Quantity: 5}},
		},
	}

	entries, err := PurchaseEntries(purchases, testInventory)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Purchase #B-3: Flour (x5)", entries[0].Description)
	assert.True(t, entries[0].Credit.Equal(dec(700)), "a bill grows the payable")
	assert.Equal(t, "Payment for #B-3", entries[1].Description)
	assert.True(t, entries[1].Debit.Equal(dec(300)), "a payment shrinks the payable")
}

func TestExpenseEntries(t *testing.T) {
	categories := []ExpenseCategory{
		{
			ID:    "c-1",
			Name:  "Groceries",
			Items: []CategoryItem{{ID: "ci-1", Name: "Vegetables"}},
		},
	}
	expenses := []Expense{
		{
			ID:         "exp-12345678",
			ShopID:     "shop-1",
			Date:       "2024-03-10",
			TotalBill:  dec(250),
			AmountPaid: dec(100),
			CategoryID: "c-1",
			ItemID:     "ci-1",
			Notes:      "weekly",
		},
	}

	entries, err := ExpenseEntries(expenses, categories)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Groceries - Vegetables (weekly)", entries[0].Description)
	assert.True(t, entries[0].Credit.Equal(dec(250)))
	assert.Equal(t, "Payment for Expense #45678", entries[1].Description)
	assert.True(t, entries[1].Debit.Equal(dec(100)))
}

func TestExpenseEntries_UnknownCategory(t *testing.T) {
	expenses := []Expense{
		{ID: "e-1", Date: "2024-03-10", TotalBill: dec(40), CategoryID: "gone"},
	}

	entries, err := ExpenseEntries(expenses, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Expense", entries[0].Description)
}

func TestSalaryEntries_PolarityTable(t *testing.T) {
	tests := []struct {
		name       string
		txType     SalaryTransactionType
		amount     int64
		wantDebit  int64
		wantCredit int64
	}{
		{"salary is a debit", SalaryTypeSalary, 1000, 1000, 0},
		{"advance is a debit", SalaryTypeAdvance, 200, 200, 0},
		{"daily expense is a debit", SalaryTypeDailyExpense, 50, 50, 0},
		{"penalty is a debit", SalaryTypePenalty, 75, 75, 0},
		{"tip is a credit", SalaryTypeTip, 30, 0, 30},
		{"positive adjustment is a debit", SalaryTypeAdjustment, 80, 80, 0},
		{"negative adjustment is a credit of the magnitude", SalaryTypeAdjustment, -50, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := []SalaryTransaction{{
				ID:     "tx-1",
				Date:   "2024-03-01",
				Type:   tt.txType,
				Amount: dec(tt.amount),
			}}

			entries, err := SalaryEntries(txs)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.True(t, entries[0].Debit.Equal(dec(tt.wantDebit)), "debit = %s", entries[0].Debit)
			assert.True(t, entries[0].Credit.Equal(dec(tt.wantCredit)), "credit = %s", entries[0].Credit)
		})
	}
}

func TestSalaryEntries_ZeroAdjustmentOmitted(t *testing.T) {
	txs := []SalaryTransaction{
		{ID: "tx-1", Date: "2024-03-01", Type: SalaryTypeAdjustment, Amount: decimal.Zero},
	}

	entries, err := SalaryEntries(txs)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSalaryEntries_WorkPaymentIsInformational(t *testing.T) {
	txs := []SalaryTransaction{
		{ID: "tx-1", Date: "2024-03-01", Type: SalaryTypeWorkPayment, Amount: dec(120), Notes: "batch 9"},
	}

	entries, err := SalaryEntries(txs)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Work payment: batch 9", entries[0].Description)
	assert.True(t, entries[0].Debit.IsZero())
	assert.True(t, entries[0].Credit.IsZero())
}

func TestSalaryEntries_Label(t *testing.T) {
	txs := []SalaryTransaction{
		{ID: "tx-1", Date: "2024-03-01", Type: SalaryTypeDailyExpense, Amount: dec(10), Notes: "lunch"},
	}

	entries, err := SalaryEntries(txs)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Daily expense: lunch", entries[0].Description)
}

func TestProductionEntries(t *testing.T) {
	batches := []ProductionBatch{
		{
			BatchCode:      "B-1",
			ProductionDate: "2024-03-04",
			FinishedGoods:  []LineItem{{ItemID: "it-1", Quantity: 100}},
			LaborCosts: []LaborCost{
				{WorkerID: "w-1", Quantity: 40, Cost: dec(400)},
				{WorkerID: "w-2", Quantity: 60, Cost: dec(600)},
			},
		},
		{
			BatchCode:      "B-2",
			ProductionDate: "2024-03-06",
			LaborCosts:     []LaborCost{{WorkerID: "w-1", Quantity: 10, Cost: dec(90)}},
		},
	}

	entries, err := ProductionEntries(batches, "w-1", testInventory)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Work on batch B-1: Produced Sugar (x40)", entries[0].Description)
	assert.True(t, entries[0].Credit.Equal(dec(400)))
	assert.Equal(t, "Work on batch B-2: Produced Product (x10)", entries[1].Description)
	assert.True(t, entries[1].Credit.Equal(dec(90)))
}

func TestMonthlySalaryEntries(t *testing.T) {
	worker := Worker{
		ID:            "w-1",
		JoiningDate:   "2024-01-15",
		WorkType:      WorkTypeSalaried,
		Salary:        dec(3100), // January: 31 days, daily rate 100
		AllowedLeaves: 2,
	}
	attendance := []AttendanceRecord{
		{WorkerID: "w-1", Date: "2024-01-16", Status: AttendancePresent},
		{WorkerID: "w-1", Date: "2024-01-17", Status: AttendancePresent},
		{WorkerID: "w-1", Date: "2024-01-18", Status: AttendanceLeave},
		{WorkerID: "w-1", Date: "2024-01-19", Status: AttendanceLeave},
		{WorkerID: "w-1", Date: "2024-01-20", Status: AttendanceLeave},
		{WorkerID: "w-1", Date: "2024-01-21", Status: AttendanceAbsent},
	}
	now := time.Date(2024, time.January, 31, 18, 0, 0, 0, time.UTC)

	entries, err := MonthlySalaryEntries(worker, attendance, now)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	// 2 present + min(3 leaves, 2 allowed) = 4 paid days at rate 100.
	assert.True(t, e.Credit.Equal(dec(400)), "earned = %s", e.Credit)
	assert.Equal(t, "Salary Earned for January 2024", e.Description)
	assert.Equal(t, time.January, e.Date.Month())

	require.NotNil(t, e.Breakdown)
	assert.Equal(t, 2, e.Breakdown.Present)
	assert.Equal(t, 3, e.Breakdown.Leave)
	assert.Equal(t, 1, e.Breakdown.Absent)
}

func TestMonthlySalaryEntries_NoAttendanceEarnsNothing(t *testing.T) {
	worker := Worker{ID: "w-1", JoiningDate: "2024-01-01", Salary: dec(3000)}
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	entries, err := MonthlySalaryEntries(worker, nil, now)
	require.NoError(t, err)
	assert.Empty(t, entries, "months without paid days emit no entry")
}

func TestMonthlySalaryEntries_FutureJoiningDate(t *testing.T) {
	worker := Worker{ID: "w-1", JoiningDate: "2030-01-01", Salary: dec(3000)}

	entries, err := MonthlySalaryEntries(worker, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMonthlySalaryEntries_SpansMonths(t *testing.T) {
	worker := Worker{ID: "w-1", JoiningDate: "2024-01-01", Salary: dec(2900), AllowedLeaves: 0}
	attendance := []AttendanceRecord{
		{WorkerID: "w-1", Date: "2024-01-10", Status: AttendancePresent},
		{WorkerID: "w-1", Date: "2024-02-10", Status: AttendancePresent},
		{WorkerID: "w-1", Date: "2024-02-11", Status: AttendancePresent},
	}
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	entries, err := MonthlySalaryEntries(worker, attendance, now)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// February 2024 has 29 days: rate 100, two present days.
	assert.True(t, entries[1].Credit.Equal(dec(200)), "february earned = %s", entries[1].Credit)
}

func TestMonthlySalaryEntries_BadJoiningDate(t *testing.T) {
	worker := Worker{ID: "w-1", JoiningDate: "not-a-date"}

	_, err := MonthlySalaryEntries(worker, nil, time.Now())
	assert.ErrorIs(t, err, ErrDateUnparsable)
}

func TestParseDateFormats(t *testing.T) {
	for _, value := range []string{
		"2024-03-01",
		"2024-03-01T10:30:00Z",
		"2024-03-01T10:30:00.123Z",
		"2024-03-01T10:30:00",
	} {
		_, err := ParseDate(value)
		assert.NoError(t, err, "value %q", value)
	}

	_, err := ParseDate("01/03/2024")
	assert.ErrorIs(t, err, ErrDateUnparsable)
}
