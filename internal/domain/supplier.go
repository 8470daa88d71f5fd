package domain

import "github.com/shopspring/decimal"

// Supplier is a counterparty the business buys from. Under a home-type
// profile the same record doubles as a shop, and its ledger is built from
// expenses instead of purchases.
type Supplier struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Company      string          `json:"company,omitempty"`
	Contact      string          `json:"contact"`
	Whatsapp     string          `json:"whatsapp,omitempty"`
	Address      string          `json:"address,omitempty"`
	CNIC         string          `json:"cnic,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
	PaymentTerms string          `json:"paymentTerms,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Status       string          `json:"status"`
	TypeID       string          `json:"typeId,omitempty"`
	Photo        string          `json:"photo,omitempty"`
}
