package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/khatadesk/khata/internal/adapter/http/dto"
	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
)

type customerServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error)
	getFn    func(ctx context.Context, id string) (*domain.Customer, error)
	listFn   func(ctx context.Context) ([]domain.Customer, error)
	updateFn func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *customerServiceStub) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
	return s.createFn(ctx, input)
}

func (s *customerServiceStub) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.getFn(ctx, id)
}

func (s *customerServiceStub) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.listFn(ctx)
}

func (s *customerServiceStub) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	return s.updateFn(ctx, customer)
}

func (s *customerServiceStub) DeleteCustomer(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type customerStatementStub struct {
	statementFn func(ctx context.Context, customerID string, q usecase.StatementQuery) (*usecase.Statement, error)
}

func (s *customerStatementStub) CustomerStatement(ctx context.Context, customerID string, q usecase.StatementQuery) (*usecase.Statement, error) {
	return s.statementFn(ctx, customerID, q)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	customer := &domain.Customer{ID: "cust-1", Name: "Ali Traders", Contact: "0300-1234567"}

	var captured usecase.CreateCustomerInput
	handler := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			captured = input
			return customer, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.CreateCustomerRequest{Name: "Ali Traders", Contact: "0300-1234567"})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Name != "Ali Traders" || captured.Contact != "0300-1234567" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp domain.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "cust-1" {
		t.Fatalf("expected customer ID cust-1, got %s", resp.ID)
	}
}

func TestCustomerHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			t.Fatal("CreateCustomer should not be called for invalid payload")
			return nil, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			return nil, domain.ErrCustomerNotFound
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCustomerHandler_Statement(t *testing.T) {
	st := &usecase.Statement{
		Direction:      domain.DirectionCustomer,
		Status:         "Due",
		ClosingBalance: decimal.NewFromInt(300),
		Party:          usecase.Party{Name: "Ali Traders", Type: "Customer"},
		Rows: []domain.StatementRow{
			{
				Kind:       domain.RowEntry,
				Index:      1,
				Debit:      decimal.NewFromInt(300),
				Balance:    decimal.NewFromInt(300),
				HasBalance: true,
			},
		},
	}

	var gotID string
	var gotQuery usecase.StatementQuery
	handler := NewCustomerHandler(&customerServiceStub{}, &customerStatementStub{
		statementFn: func(ctx context.Context, customerID string, q usecase.StatementQuery) (*usecase.Statement, error) {
			gotID = customerID
			gotQuery = q
			return st, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/cust-1/statement?start=1&end=10", nil), "id", "cust-1")
	rec := httptest.NewRecorder()

	handler.Statement(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotID != "cust-1" {
		t.Fatalf("expected customer cust-1, got %s", gotID)
	}
	if gotQuery.Rows.Start == nil || *gotQuery.Rows.Start != 1 {
		t.Fatalf("expected start=1, got %v", gotQuery.Rows.Start)
	}

	var resp dto.StatementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Party.Name != "Ali Traders" || resp.ClosingBalance != "300" {
		t.Fatalf("unexpected statement response: %+v", resp)
	}
	if len(resp.Rows) != 1 || resp.Rows[0].Credit != "-" {
		t.Fatalf("expected dash for empty credit cell, got %+v", resp.Rows)
	}
}

func TestCustomerHandler_Statement_BadRange(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{}, &customerStatementStub{
		statementFn: func(ctx context.Context, customerID string, q usecase.StatementQuery) (*usecase.Statement, error) {
			t.Fatal("CustomerStatement should not be called for a bad query")
			return nil, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/cust-1/statement?start=abc", nil), "id", "cust-1")
	rec := httptest.NewRecorder()

	handler.Statement(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
