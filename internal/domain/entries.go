package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// itemIndex resolves line-item ids to display names.
type itemIndex map[string]string

func indexItems(items []InventoryItem) itemIndex {
	ix := make(itemIndex, len(items))
	for _, it := range items {
		ix[it.ID] = it.Name
	}
	return ix
}

func (ix itemIndex) name(id, fallback string) string {
	if n, ok := ix[id]; ok && n != "" {
		return n
	}
	return fallback
}

// itemSummary renders line items as "Name (x2), Other (x1)".
func (ix itemIndex) itemSummary(items []LineItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s (x%d)", ix.name(item.ItemID, "Item"), item.Quantity)
	}
	return strings.Join(parts, ", ")
}

// SaleEntries maps a customer's sales into ledger entries: the invoice
// total is a debit (the customer owes more), the amount received a credit.
func SaleEntries(sales []Sale, inventory []InventoryItem) ([]TransactionEntry, error) {
	ix := indexItems(inventory)

	entries := make([]TransactionEntry, 0, len(sales)*2)
	for _, s := range sales {
		date, err := ParseDate(s.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("sale %s: %w", s.ID, err)
		}
		if s.GrandTotal.IsPositive() {
			entries = append(entries, TransactionEntry{
				Date:        date,
				Description: fmt.Sprintf("Sale #%s: %s", s.InvoiceNumber, ix.itemSummary(s.Items)),
				Debit:       s.GrandTotal,
			})
		}
		if s.AmountReceived.IsPositive() {
			entries = append(entries, TransactionEntry{
				Date:        date,
				Description: fmt.Sprintf("Payment for #%s", s.InvoiceNumber),
				Credit:      s.AmountReceived,
			})
		}
	}
	return entries, nil
}

// PurchaseEntries maps a supplier's purchases into ledger entries. The
// payable direction swaps the polarity: a bill is a credit (the business
// owes more), a payment a debit.
func PurchaseEntries(purchases []Purchase, inventory []InventoryItem) ([]TransactionEntry, error) {
	ix := indexItems(inventory)

	entries := make([]TransactionEntry, 0, len(purchases)*2)
	for _, p := range purchases {
		date, err := ParseDate(p.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("purchase %s: %w", p.ID, err)
		}
		if p.GrandTotal.IsPositive() {
			entries = append(entries, TransactionEntry{
				Date:        date,
				Description: fmt.Sprintf("Purchase #%s: %s", p.BillNumber, ix.itemSummary(p.Items)),
				Credit:      p.GrandTotal,
			})
		}
		if p.AmountPaid.IsPositive() {
			entries = append(entries, TransactionEntry{
				Date:        date,
				Description: fmt.Sprintf("Payment for #%s", p.BillNumber),
				Debit:       p.AmountPaid,
			})
		}
	}
	return entries, nil
}

// ExpenseEntries maps a shop's expenses into ledger entries, same polarity
// as purchases.
func ExpenseEntries(expenses []Expense, categories []ExpenseCategory) ([]TransactionEntry, error) {
	byID := make(map[string]ExpenseCategory, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	entries := make([]TransactionEntry, 0, len(expenses)*2)
	for _, e := range expenses {
		date, err := ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		if e.TotalBill.IsPositive() {
			entries = append(entries, TransactionEntry{
				Date:        date,
				Description: expenseDescription(e, byID),
				Credit:      e.TotalBill,
			})
		}
		if e.AmountPaid.IsPositive() {
			entries = append(entries, TransactionEntry{
				Date:        date,
				Description: fmt.Sprintf("Payment for Expense #%s", shortID(e.ID)),
				Debit:       e.AmountPaid,
			})
		}
	}
	return entries, nil
}

func expenseDescription(e Expense, categories map[string]ExpenseCategory) string {
	desc := "Expense"
	category, ok := categories[e.CategoryID]
	if ok && category.Name != "" {
		desc = category.Name
	}
	if ok && e.ItemID != "" {
		for _, item := range category.Items {
			if item.ID == e.ItemID {
				desc += " - " + item.Name
				break
			}
		}
	}
	if e.Notes != "" {
		desc += " (" + e.Notes + ")"
	}
	return desc
}

func shortID(id string) string {
	if len(id) > 5 {
		return id[len(id)-5:]
	}
	return id
}

// SalaryEntries maps payroll transactions into ledger entries using the
// liability-to-worker polarity: payouts (salary, advance, daily expense,
// penalty) debit the worker's balance, tips credit it. Adjustments follow
// the sign of their amount; the magnitude is always what lands in the
// column, and zero-amount adjustments are omitted. Work payments keep a
// zero-effect row for the record.
func SalaryEntries(txs []SalaryTransaction) ([]TransactionEntry, error) {
	entries := make([]TransactionEntry, 0, len(txs))
	for _, tx := range txs {
		if tx.Type == SalaryTypeAdjustment && tx.Amount.IsZero() {
			continue
		}
		date, err := ParseDate(tx.Date)
		if err != nil {
			return nil, fmt.Errorf("salary transaction %s: %w", tx.ID, err)
		}

		entry := TransactionEntry{
			Date:        date,
			Description: fmt.Sprintf("%s: %s", salaryTypeLabel(tx.Type), tx.Notes),
		}
		switch {
		case tx.Type == SalaryTypeTip,
			tx.Type == SalaryTypeAdjustment && tx.Amount.IsNegative():
			entry.Credit = tx.Amount.Abs()
		case tx.Type == SalaryTypeWorkPayment:
			// informational row, no balance effect
		default:
			entry.Debit = tx.Amount.Abs()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// salaryTypeLabel renders "daily_expense" as "Daily expense".
func salaryTypeLabel(t SalaryTransactionType) string {
	label := strings.Replace(string(t), "_", " ", 1)
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// ProductionEntries maps a work-based worker's batch labor costs into
// credit entries.
func ProductionEntries(batches []ProductionBatch, workerID string, inventory []InventoryItem) ([]TransactionEntry, error) {
	ix := indexItems(inventory)

	var entries []TransactionEntry
	for _, batch := range batches {
		var produced string
		if len(batch.FinishedGoods) > 0 {
			produced = ix.name(batch.FinishedGoods[0].ItemID, "Product")
		} else {
			produced = "Product"
		}
		for _, lc := range batch.LaborCosts {
			if lc.WorkerID != workerID {
				continue
			}
			date, err := ParseDate(batch.ProductionDate)
			if err != nil {
				return nil, fmt.Errorf("production batch %s: %w", batch.BatchCode, err)
			}
			entries = append(entries, TransactionEntry{
				Date:        date,
				Description: fmt.Sprintf("Work on batch %s: Produced %s (x%d)", batch.BatchCode, produced, lc.Quantity),
				Credit:      lc.Cost,
			})
		}
	}
	return entries, nil
}

// MonthlySalaryEntries synthesizes one "salary earned" credit per calendar
// month from the worker's joining date through now. The month's pay is
// dailyRate x paidDays where dailyRate divides the monthly salary by that
// month's day count and paidDays counts present days plus leave days up to
// the allowed quota. Months that earn nothing emit nothing.
func MonthlySalaryEntries(w Worker, attendance []AttendanceRecord, now time.Time) ([]TransactionEntry, error) {
	joined, err := ParseDate(w.JoiningDate)
	if err != nil {
		return nil, fmt.Errorf("worker %s: %w", w.ID, err)
	}
	if !joined.Before(now) {
		return nil, nil
	}

	type day struct {
		date   time.Time
		status string
	}
	days := make([]day, 0, len(attendance))
	for _, a := range attendance {
		date, err := ParseDate(a.Date)
		if err != nil {
			return nil, fmt.Errorf("attendance for worker %s: %w", a.WorkerID, err)
		}
		days = append(days, day{date: date, status: a.Status})
	}

	var entries []TransactionEntry
	for _, monthStart := range MonthsBetween(joined, now) {
		dailyRate := w.Salary.Div(decimal.NewFromInt(int64(DaysInMonth(monthStart))))

		var present, leave, absent int
		for _, d := range days {
			if !SameMonth(d.date, monthStart) {
				continue
			}
			switch d.status {
			case AttendancePresent:
				present++
			case AttendanceLeave:
				leave++
			case AttendanceAbsent:
				absent++
			}
		}

		paidLeaves := leave
		if paidLeaves > w.AllowedLeaves {
			paidLeaves = w.AllowedLeaves
		}
		earned := dailyRate.Mul(decimal.NewFromInt(int64(present + paidLeaves)))
		if !earned.IsPositive() {
			continue
		}

		entries = append(entries, TransactionEntry{
			Date:        EndOfMonth(monthStart),
			Description: fmt.Sprintf("Salary Earned for %s", monthStart.Format("January 2006")),
			Credit:      earned,
			Breakdown: &MonthlyBreakdown{
				Month:   monthStart,
				Present: present,
				Leave:   leave,
				Absent:  absent,
			},
		})
	}
	return entries, nil
}
