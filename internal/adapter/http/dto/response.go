package dto

import (
	"github.com/khatadesk/khata/internal/domain"
)

// Record responses reuse the domain types directly: stored records are
// already shaped like the wire format, json tags included. Only
// statements and users get dedicated response types.

// ListResponse wraps a record list with its count.
type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// NewListResponse builds a ListResponse. A nil slice renders as [].
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: int64(len(items))}
}

// UserResponse represents a user in API responses; the password hash
// never appears.
type UserResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
