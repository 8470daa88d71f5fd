package domain

import "errors"

var (
	// Counterparty errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrProfileNotFound  = errors.New("profile not found")

	// Record errors
	ErrRecordNotFound     = errors.New("record not found")
	ErrDateUnparsable     = errors.New("date cannot be parsed")
	ErrInvalidAmount      = errors.New("amount must not be negative")
	ErrInvalidWorkType    = errors.New("invalid work type")
	ErrInvalidSalaryType  = errors.New("invalid salary transaction type")
	ErrInvalidDirection   = errors.New("invalid statement direction")
	ErrInvalidRowRange    = errors.New("invalid row range")
	ErrInvalidProfileType = errors.New("invalid profile type")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token expired")
)
