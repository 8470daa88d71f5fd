package domain

import "github.com/shopspring/decimal"

// WorkType distinguishes how a worker earns.
type WorkType string

const (
	// WorkTypeSalaried earns a monthly salary prorated by attendance.
	WorkTypeSalaried WorkType = "salary"
	// WorkTypeWorkBased earns per production batch labor cost.
	WorkTypeWorkBased WorkType = "work_based"
)

// IsValid reports whether t is a known work type.
func (t WorkType) IsValid() bool {
	return t == WorkTypeSalaried || t == WorkTypeWorkBased
}

// ProductionRate is a per-item piece rate for a work-based worker.
type ProductionRate struct {
	ItemID string          `json:"itemId"`
	Rate   decimal.Decimal `json:"rate"`
}

// Worker is an employee counterparty. JoiningDate is an ISO-8601 string
// like every other stored date.
type Worker struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	FatherName      string           `json:"fatherName,omitempty"`
	Contact         string           `json:"contact"`
	Address         string           `json:"address,omitempty"`
	CNIC            string           `json:"cnic,omitempty"`
	JoiningDate     string           `json:"joiningDate"`
	WorkType        WorkType         `json:"workType"`
	Salary          decimal.Decimal  `json:"salary,omitempty"`
	ProductionRates []ProductionRate `json:"productionRates,omitempty"`
	AllowedLeaves   int              `json:"allowedLeaves,omitempty"`
	Status          string           `json:"status"`
	Role            string           `json:"role,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// SalaryTransactionType enumerates payroll ledger events.
type SalaryTransactionType string

const (
	SalaryTypeSalary       SalaryTransactionType = "salary"
	SalaryTypeAdvance      SalaryTransactionType = "advance"
	SalaryTypeWorkPayment  SalaryTransactionType = "work_payment"
	SalaryTypeDailyExpense SalaryTransactionType = "daily_expense"
	SalaryTypeTip          SalaryTransactionType = "tip"
	SalaryTypePenalty      SalaryTransactionType = "penalty"
	SalaryTypeAdjustment   SalaryTransactionType = "adjustment"
)

// IsValid reports whether t is a known salary transaction type.
func (t SalaryTransactionType) IsValid() bool {
	switch t {
	case SalaryTypeSalary, SalaryTypeAdvance, SalaryTypeWorkPayment,
		SalaryTypeDailyExpense, SalaryTypeTip, SalaryTypePenalty,
		SalaryTypeAdjustment:
		return true
	}
	return false
}

// SalaryTransaction is one payroll event against a worker. Adjustment
// amounts may be negative; everything else is stored non-negative.
type SalaryTransaction struct {
	ID       string                `json:"id"`
	WorkerID string                `json:"workerId"`
	Date     string                `json:"date"`
	Type     SalaryTransactionType `json:"type"`
	Amount   decimal.Decimal       `json:"amount"`
	Notes    string                `json:"notes,omitempty"`
}

// AttendanceStatus values as stored per day.
const (
	AttendancePresent = "p"
	AttendanceAbsent  = "a"
	AttendanceLeave   = "l"
)

// AttendanceRecord marks one worker's status on one day (yyyy-mm-dd).
type AttendanceRecord struct {
	WorkerID string `json:"workerId"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}
