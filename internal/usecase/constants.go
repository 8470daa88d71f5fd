package usecase

// Collection names as persisted in the store. A collection is a named
// array of records saved and loaded whole.
const (
	CollectionCustomers          = "customers"
	CollectionSuppliers          = "suppliers"
	CollectionWorkers            = "workers"
	CollectionProfiles           = "profiles"
	CollectionSales              = "sales"
	CollectionPurchases          = "purchases"
	CollectionExpenses           = "expenses"
	CollectionExpenseCategories  = "home-expense-categories"
	CollectionSalaryTransactions = "salary-transactions"
	CollectionProductionHistory  = "production-history"
	CollectionAttendance         = "attendance"
	CollectionInventory          = "inventory"
	CollectionUsers              = "users"
)

// Pagination defaults shared by list endpoints.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)
