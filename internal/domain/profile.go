package domain

// ProfileType decides which records back a shop/supplier ledger.
type ProfileType string

const (
	// ProfileTypeBusiness ledgers suppliers from purchases.
	ProfileTypeBusiness ProfileType = "business"
	// ProfileTypeHome ledgers shops from expenses.
	ProfileTypeHome ProfileType = "home"
)

// IsValid reports whether t is a known profile type.
func (t ProfileType) IsValid() bool {
	return t == ProfileTypeBusiness || t == ProfileTypeHome
}

// Profile is one business identity. Exactly one profile is active at a
// time; statements resolve it once per request instead of reading a global
// flag.
type Profile struct {
	ID           string      `json:"id"`
	BusinessName string      `json:"businessName"`
	Address      string      `json:"address,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Type         ProfileType `json:"type"`
	Active       bool        `json:"active"`
}
