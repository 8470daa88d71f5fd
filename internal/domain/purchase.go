package domain

import "github.com/shopspring/decimal"

// Purchase is one supplier bill. Symmetric to Sale with debit and credit
// swapped: the bill grows the payable, the payment shrinks it.
type Purchase struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplierId"`
	BillNumber   string          `json:"billNumber"`
	PurchaseDate string          `json:"purchaseDate"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	Items        []LineItem      `json:"items,omitempty"`
}
