package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/infrastructure/auth"
)

func TestAuth_RejectsMissingAndMalformedHeaders(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	handler := Auth(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without valid credentials")
	}))

	for _, header := range []string{"", "Token abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rr.Code)
		}
	}
}

func TestAuth_PutsUserInContext(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(&domain.User{
		ID:    "user-1",
		Email: "owner@example.com",
		Role:  domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	var got *domain.User
	handler := Auth(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got == nil || got.ID != "user-1" || got.Role != domain.RoleAdmin {
		t.Fatalf("expected user in context, got %+v", got)
	}
}

func TestAuth_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	other := auth.NewJWTManager("other-secret", time.Hour)
	token, err := other.Generate(&domain.User{ID: "user-1", Email: "owner@example.com"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	handler := Auth(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a forged token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	run := func(role domain.Role) int {
		token, err := jwtManager.Generate(&domain.User{ID: "u", Email: "u@example.com", Role: role})
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		handler := Auth(jwtManager)(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/customers/c1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := run(domain.RoleAdmin); code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", code)
	}
	if code := run(domain.RoleViewer); code != http.StatusForbidden {
		t.Fatalf("viewer: expected 403, got %d", code)
	}
}
