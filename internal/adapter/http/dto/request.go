package dto

import (
	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

// CreateCustomerRequest represents a request to create a customer.
type CreateCustomerRequest struct {
	Name        string          `json:"name"`
	Company     string          `json:"company,omitempty"`
	Contact     string          `json:"contact"`
	Whatsapp    string          `json:"whatsapp,omitempty"`
	Address     string          `json:"address,omitempty"`
	CNIC        string          `json:"cnic,omitempty"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	Notes       string          `json:"notes,omitempty"`
	TypeID      string          `json:"typeId,omitempty"`
	Photo       string          `json:"photo,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:        r.Name,
		Company:     r.Company,
		Contact:     r.Contact,
		Whatsapp:    r.Whatsapp,
		Address:     r.Address,
		CNIC:        r.CNIC,
		CreditLimit: r.CreditLimit,
		Notes:       r.Notes,
		TypeID:      r.TypeID,
		Photo:       r.Photo,
	}
}

// CreateSupplierRequest represents a request to create a supplier/shop.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	Company      string `json:"company,omitempty"`
	Contact      string `json:"contact"`
	Whatsapp     string `json:"whatsapp,omitempty"`
	Address      string `json:"address,omitempty"`
	CNIC         string `json:"cnic,omitempty"`
	PaymentTerms string `json:"paymentTerms,omitempty"`
	Notes        string `json:"notes,omitempty"`
	TypeID       string `json:"typeId,omitempty"`
	Photo        string `json:"photo,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSupplierRequest) ToUseCaseInput() usecase.CreateSupplierInput {
	return usecase.CreateSupplierInput{
		Name:         r.Name,
		Company:      r.Company,
		Contact:      r.Contact,
		Whatsapp:     r.Whatsapp,
		Address:      r.Address,
		CNIC:         r.CNIC,
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
		TypeID:       r.TypeID,
		Photo:        r.Photo,
	}
}

// CreateWorkerRequest represents a request to create a worker.
type CreateWorkerRequest struct {
	Name            string                  `json:"name"`
	FatherName      string                  `json:"fatherName,omitempty"`
	Contact         string                  `json:"contact"`
	Address         string                  `json:"address,omitempty"`
	CNIC            string                  `json:"cnic,omitempty"`
	JoiningDate     string                  `json:"joiningDate"`
	WorkType        domain.WorkType         `json:"workType"`
	Salary          decimal.Decimal         `json:"salary,omitempty"`
	ProductionRates []domain.ProductionRate `json:"productionRates,omitempty"`
	AllowedLeaves   int                     `json:"allowedLeaves,omitempty"`
	Role            string                  `json:"role,omitempty"`
	Notes           string                  `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateWorkerRequest) ToUseCaseInput() usecase.CreateWorkerInput {
	return usecase.CreateWorkerInput{
		Name:            r.Name,
		FatherName:      r.FatherName,
		Contact:         r.Contact,
		Address:         r.Address,
		CNIC:            r.CNIC,
		JoiningDate:     r.JoiningDate,
		WorkType:        r.WorkType,
		Salary:          r.Salary,
		ProductionRates: r.ProductionRates,
		AllowedLeaves:   r.AllowedLeaves,
		Role:            r.Role,
		Notes:           r.Notes,
	}
}

// CreateProfileRequest represents a request to create a profile.
type CreateProfileRequest struct {
	BusinessName string             `json:"businessName"`
	Address      string             `json:"address,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	Type         domain.ProfileType `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateProfileRequest) ToUseCaseInput() usecase.CreateProfileInput {
	return usecase.CreateProfileInput{
		BusinessName: r.BusinessName,
		Address:      r.Address,
		Phone:        r.Phone,
		Type:         r.Type,
	}
}

// RecordSaleRequest represents a request to record a sale.
type RecordSaleRequest struct {
	CustomerID     string            `json:"customerId"`
	InvoiceNumber  string            `json:"invoiceNumber"`
	InvoiceDate    string            `json:"invoiceDate"`
	GrandTotal     decimal.Decimal   `json:"grandTotal"`
	AmountReceived decimal.Decimal   `json:"amountReceived"`
	Items          []domain.LineItem `json:"items,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordSaleRequest) ToUseCaseInput() usecase.RecordSaleInput {
	return usecase.RecordSaleInput{
		CustomerID:     r.CustomerID,
		InvoiceNumber:  r.InvoiceNumber,
		InvoiceDate:    r.InvoiceDate,
		GrandTotal:     r.GrandTotal,
		AmountReceived: r.AmountReceived,
		Items:          r.Items,
	}
}

// RecordPurchaseRequest represents a request to record a purchase.
type RecordPurchaseRequest struct {
	SupplierID   string            `json:"supplierId"`
	BillNumber   string            `json:"billNumber"`
	PurchaseDate string            `json:"purchaseDate"`
	GrandTotal   decimal.Decimal   `json:"grandTotal"`
	AmountPaid   decimal.Decimal   `json:"amountPaid"`
	Items        []domain.LineItem `json:"items,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPurchaseRequest) ToUseCaseInput() usecase.RecordPurchaseInput {
	return usecase.RecordPurchaseInput{
		SupplierID:   r.SupplierID,
		BillNumber:   r.BillNumber,
		PurchaseDate: r.PurchaseDate,
		GrandTotal:   r.GrandTotal,
		AmountPaid:   r.AmountPaid,
		Items:        r.Items,
	}
}

// RecordExpenseRequest represents a request to record an expense.
type RecordExpenseRequest struct {
	ShopID     string          `json:"shopId"`
	Date       string          `json:"date"`
	TotalBill  decimal.Decimal `json:"totalBill"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Notes      string          `json:"notes,omitempty"`
	CategoryID string          `json:"categoryId"`
	ItemID     string          `json:"itemId,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordExpenseRequest) ToUseCaseInput() usecase.RecordExpenseInput {
	return usecase.RecordExpenseInput{
		ShopID:     r.ShopID,
		Date:       r.Date,
		TotalBill:  r.TotalBill,
		AmountPaid: r.AmountPaid,
		Notes:      r.Notes,
		CategoryID: r.CategoryID,
		ItemID:     r.ItemID,
	}
}

// CreateCategoryRequest represents a request to create an expense category.
type CreateCategoryRequest struct {
	Name  string                `json:"name"`
	Items []domain.CategoryItem `json:"items,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCategoryRequest) ToUseCaseInput() usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{
		Name:  r.Name,
		Items: r.Items,
	}
}

// RecordBatchRequest represents a request to record a production batch.
type RecordBatchRequest struct {
	BatchCode      string             `json:"batchCode"`
	ProductionDate string             `json:"productionDate"`
	FinishedGoods  []domain.LineItem  `json:"finishedGoods,omitempty"`
	LaborCosts     []domain.LaborCost `json:"laborCosts,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordBatchRequest) ToUseCaseInput() usecase.RecordBatchInput {
	return usecase.RecordBatchInput{
		BatchCode:      r.BatchCode,
		ProductionDate: r.ProductionDate,
		FinishedGoods:  r.FinishedGoods,
		LaborCosts:     r.LaborCosts,
	}
}

// RecordSalaryTransactionRequest represents a request to record a payroll
// event.
type RecordSalaryTransactionRequest struct {
	Date   string                       `json:"date"`
	Type   domain.SalaryTransactionType `json:"type"`
	Amount decimal.Decimal              `json:"amount"`
	Notes  string                       `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input for the given worker.
func (r *RecordSalaryTransactionRequest) ToUseCaseInput(workerID string) usecase.RecordSalaryTransactionInput {
	return usecase.RecordSalaryTransactionInput{
		WorkerID: workerID,
		Date:     r.Date,
		Type:     r.Type,
		Amount:   r.Amount,
		Notes:    r.Notes,
	}
}

// SetAttendanceRequest represents a request to replace a worker's
// attendance records.
type SetAttendanceRequest struct {
	Records []domain.AttendanceRecord `json:"records"`
}

// CreateInventoryItemRequest represents a request to create an inventory
// item.
type CreateInventoryItemRequest struct {
	Name string `json:"name"`
}

// RegisterRequest represents a request to register a user.
type RegisterRequest struct {
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     r.Role,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
