package domain

// InventoryItem names a stocked item; ledger descriptions resolve line
// items against it.
type InventoryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
