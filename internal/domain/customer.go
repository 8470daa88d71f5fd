package domain

import "github.com/shopspring/decimal"

// CustomerStatus values mirror what the forms write.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Customer is a counterparty the business sells to. Balance is the stored
// snapshot maintained by the sales forms; statements never trust it and
// recompute from sales records instead.
type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Company     string          `json:"company,omitempty"`
	Contact     string          `json:"contact"`
	Whatsapp    string          `json:"whatsapp,omitempty"`
	Address     string          `json:"address,omitempty"`
	CNIC        string          `json:"cnic,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	CreditLimit decimal.Decimal `json:"creditLimit,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Status      string          `json:"status"`
	TypeID      string          `json:"typeId,omitempty"`
	Photo       string          `json:"photo,omitempty"`
}
