package domain

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Direction selects the running-balance sign convention for a statement.
type Direction string

const (
	// DirectionCustomer grows the balance with debits: what the customer
	// owes the business.
	DirectionCustomer Direction = "customer"
	// DirectionPayable grows the balance with credits: what the business
	// owes the counterparty (supplier, shop or worker).
	DirectionPayable Direction = "payable"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionCustomer || d == DirectionPayable
}

// delta is the signed balance contribution of a single entry.
func (d Direction) delta(e TransactionEntry) decimal.Decimal {
	if d == DirectionPayable {
		return e.Credit.Sub(e.Debit)
	}
	return e.Debit.Sub(e.Credit)
}

// TransactionEntry is one normalized ledger event for a counterparty. At
// most one of Debit/Credit is non-zero in practice, but nothing here relies
// on that: both may be zero for informational rows.
type TransactionEntry struct {
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Breakdown   *MonthlyBreakdown
}

// MonthlyBreakdown carries the attendance counts behind a synthesized
// salary entry. The renderer formats it; the builder only passes it
// through.
type MonthlyBreakdown struct {
	Month   time.Time
	Present int
	Leave   int
	Absent  int
}

// RowRange is a 1-indexed inclusive window into the full statement. A nil
// bound is unbounded on that side.
type RowRange struct {
	Start *int
	End   *int
}

// Full reports whether the window covers the entire statement of n rows.
func (r RowRange) Full(n int) bool {
	start, end := r.clamp(n)
	return start == 1 && end == n
}

// clamp resolves the effective bounds against n total rows. Start is never
// below 1; End never exceeds n and never goes below 0.
func (r RowRange) clamp(n int) (start, end int) {
	start = 1
	if r.Start != nil && *r.Start > 1 {
		start = *r.Start
	}
	end = n
	if r.End != nil && *r.End < n {
		end = *r.End
	}
	if end < 0 {
		end = 0
	}
	return start, end
}

// RowKind distinguishes entry rows from synthetic summary rows.
type RowKind string

const (
	RowEntry   RowKind = "entry"
	RowSummary RowKind = "summary"
)

// Summary row descriptions.
const (
	PreviousEntriesSummary   = "Previous Entries Summary"
	SubsequentEntriesSummary = "Subsequent Entries Summary"
)

// StatementRow is one rendered line of a ledger statement. Entry rows keep
// their original 1-based Index and their true running balance regardless of
// windowing. Summary rows aggregate an elided segment; a subsequent
// summary carries no closing balance (HasBalance is false).
type StatementRow struct {
	Kind        RowKind
	Label       string
	Index       int
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
	HasBalance  bool
	Breakdown   *MonthlyBreakdown
}

// BuildStatement turns a counterparty's entries into an ordered statement.
// Entries are sorted by date ascending (stable: ties keep source order) and
// the running balance is computed over the full list before any windowing,
// so summary rows always reflect true cumulative totals. The window elides
// head and tail segments into summary rows; it never changes the balances
// shown on visible rows.
//
// Pure function: the input slice is not modified.
func BuildStatement(entries []TransactionEntry, window RowRange, dir Direction) []StatementRow {
	sorted := make([]TransactionEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rows := make([]StatementRow, len(sorted))
	balance := decimal.Zero
	for i, e := range sorted {
		balance = balance.Add(dir.delta(e))
		rows[i] = StatementRow{
			Kind:        RowEntry,
			Label:       strconv.Itoa(i + 1),
			Index:       i + 1,
			Date:        e.Date,
			Description: e.Description,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Balance:     balance,
			HasBalance:  true,
			Breakdown:   e.Breakdown,
		}
	}

	total := len(rows)
	start, end := window.clamp(total)
	if start == 1 && end == total {
		return rows
	}

	out := make([]StatementRow, 0, total+2)

	if start > 1 {
		// The label keeps the requested bound even when it overshoots the
		// list; the totals only cover rows that exist.
		prefix := rows[:minInt(start-1, total)]
		out = append(out, summarize(fmt.Sprintf("1-%d", start-1), PreviousEntriesSummary, prefix, true))
	}

	lo := minInt(start-1, total)
	hi := maxInt(end, lo)
	out = append(out, rows[lo:hi]...)

	if end < total {
		out = append(out, summarize(fmt.Sprintf("%d-%d", end+1, total), SubsequentEntriesSummary, rows[end:], false))
	}

	return out
}

// ClosingBalance is the statement's final running balance: the signed sum
// of every entry, independent of any window.
func ClosingBalance(entries []TransactionEntry, dir Direction) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(dir.delta(e))
	}
	return balance
}

// FilterByDateRange keeps entries falling within the whole days of from
// through to, inclusive. A zero from disables filtering; a zero to means a
// single-day range ending on from's day.
func FilterByDateRange(entries []TransactionEntry, from, to time.Time) []TransactionEntry {
	if from.IsZero() {
		return entries
	}
	if to.IsZero() {
		to = from
	}
	lo, hi := StartOfDay(from), EndOfDay(to)

	filtered := make([]TransactionEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(lo) && !e.Date.After(hi) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func summarize(label, description string, rows []StatementRow, closing bool) StatementRow {
	debit, credit := decimal.Zero, decimal.Zero
	for _, r := range rows {
		debit = debit.Add(r.Debit)
		credit = credit.Add(r.Credit)
	}
	s := StatementRow{
		Kind:        RowSummary,
		Label:       label,
		Description: description,
		Debit:       debit,
		Credit:      credit,
	}
	if closing {
		s.HasBalance = true
		if n := len(rows); n > 0 {
			s.Balance = rows[n-1].Balance
		}
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
