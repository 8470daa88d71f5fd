package dto

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// Statement rows render amounts the way the printed ledger does: zero
// debit/credit cells and absent balances come out as a dash, never as 0.

const dash = "-"

// StatementRowResponse is one rendered statement line.
type StatementRowResponse struct {
	Kind        domain.RowKind     `json:"kind"`
	No          string             `json:"no"`
	Date        string             `json:"date"`
	Description string             `json:"description"`
	Debit       string             `json:"debit"`
	Credit      string             `json:"credit"`
	Balance     string             `json:"balance"`
	Breakdown   *BreakdownResponse `json:"breakdown,omitempty"`
}

// BreakdownResponse renders the attendance counts behind a synthesized
// salary row.
type BreakdownResponse struct {
	Month   string `json:"month"`
	Present int    `json:"present"`
	Leave   int    `json:"leave"`
	Absent  int    `json:"absent"`
}

// PartyResponse identifies the counterparty on the statement header.
type PartyResponse struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Contact string `json:"contact,omitempty"`
	Photo   string `json:"photo,omitempty"`
	Type    string `json:"type"`
}

// ReferenceResponse is the statement's identifying line.
type ReferenceResponse struct {
	Number string `json:"number"`
	Date   string `json:"date"`
	Type   string `json:"type"`
}

// ProfileHeaderResponse is the business identity on the statement header.
type ProfileHeaderResponse struct {
	BusinessName string `json:"businessName"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// StatementResponse is a complete statement as served to clients.
type StatementResponse struct {
	Direction      domain.Direction       `json:"direction"`
	Status         string                 `json:"status"`
	ClosingBalance string                 `json:"closingBalance"`
	Party          PartyResponse          `json:"party"`
	Reference      ReferenceResponse      `json:"reference"`
	Profile        *ProfileHeaderResponse `json:"profile,omitempty"`
	Rows           []StatementRowResponse `json:"rows"`
}

// StatementFromUseCase converts a built statement to its response form.
func StatementFromUseCase(st *usecase.Statement) *StatementResponse {
	rows := make([]StatementRowResponse, 0, len(st.Rows))
	for _, row := range st.Rows {
		rows = append(rows, rowFromDomain(row))
	}

	resp := &StatementResponse{
		Direction:      st.Direction,
		Status:         st.Status,
		ClosingBalance: st.ClosingBalance.String(),
		Party: PartyResponse{
			Name:    st.Party.Name,
			Address: st.Party.Address,
			Contact: st.Party.Contact,
			Photo:   st.Party.Photo,
			Type:    st.Party.Type,
		},
		Reference: ReferenceResponse{
			Number: st.Reference.Number,
			Date:   st.Reference.Date.Format("2006-01-02"),
			Type:   st.Reference.Type,
		},
		Rows: rows,
	}
	if st.Profile != nil {
		resp.Profile = &ProfileHeaderResponse{
			BusinessName: st.Profile.BusinessName,
			Address:      st.Profile.Address,
			Phone:        st.Profile.Phone,
		}
	}
	return resp
}

func rowFromDomain(row domain.StatementRow) StatementRowResponse {
	out := StatementRowResponse{
		Kind:        row.Kind,
		Description: row.Description,
		Debit:       amountCell(row.Debit),
		Credit:      amountCell(row.Credit),
		Balance:     dash,
		Date:        dash,
	}
	if row.HasBalance {
		out.Balance = row.Balance.String()
	}
	if row.Kind == domain.RowSummary {
		// Summary totals stay numeric even at zero; the dash is an
		// entry-row convention.
		out.No = row.Label
		out.Debit = row.Debit.String()
		out.Credit = row.Credit.String()
	} else {
		out.No = strconv.Itoa(row.Index)
		out.Date = row.Date.Format("2006-01-02")
	}
	if row.Breakdown != nil {
		out.Breakdown = &BreakdownResponse{
			Month:   row.Breakdown.Month.Format("January 2006"),
			Present: row.Breakdown.Present,
			Leave:   row.Breakdown.Leave,
			Absent:  row.Breakdown.Absent,
		}
	}
	return out
}

// amountCell renders a debit or credit cell; zero means the event had no
// effect on that side and prints as a dash.
func amountCell(d decimal.Decimal) string {
	if d.IsZero() {
		return dash
	}
	return d.String()
}
