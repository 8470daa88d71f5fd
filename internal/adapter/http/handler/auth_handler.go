package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/khatadesk/khata/internal/adapter/http/dto"
	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/infrastructure/metrics"
	"github.com/khatadesk/khata/internal/usecase"
)

// UserService defines the behavior needed by AuthHandler.
type UserService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// TokenIssuer issues signed tokens for authenticated users.
type TokenIssuer interface {
	Generate(user *domain.User) (string, error)
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	userUC  UserService
	tokens  TokenIssuer
	metrics *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC UserService, tokens TokenIssuer, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{userUC: userUC, tokens: tokens, metrics: m}
}

// Register creates a new user account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

// Login authenticates a user and returns a signed token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if h.metrics != nil {
			h.metrics.AuthAttempts.WithLabelValues("failure").Inc()
		}
		writeError(w, mapDomainError(err), "failed to authenticate", err.Error())
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	if h.metrics != nil {
		h.metrics.AuthAttempts.WithLabelValues("success").Inc()
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}
