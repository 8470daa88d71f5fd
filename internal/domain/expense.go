package domain

import "github.com/shopspring/decimal"

// Expense is one household/shop bill, used for shop ledgers under
// home-type profiles.
type Expense struct {
	ID         string          `json:"id"`
	ShopID     string          `json:"shopId"`
	Date       string          `json:"date"`
	TotalBill  decimal.Decimal `json:"totalBill"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Notes      string          `json:"notes,omitempty"`
	CategoryID string          `json:"categoryId"`
	ItemID     string          `json:"itemId,omitempty"`
}

// CategoryItem is a named item within an expense category.
type CategoryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExpenseCategory groups expenses; its items refine descriptions.
type ExpenseCategory struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []CategoryItem `json:"items,omitempty"`
}
