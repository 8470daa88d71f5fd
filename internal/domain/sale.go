package domain

import "github.com/shopspring/decimal"

// LineItem references an inventory item with a quantity.
type LineItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Sale is one invoice to a customer. GrandTotal is what the invoice is
// worth; AmountReceived is what was paid at invoice time. Both feed the
// customer ledger as separate entries.
type Sale struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customerId"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	InvoiceDate    string          `json:"invoiceDate"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
	Items          []LineItem      `json:"items,omitempty"`
}
