package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khatadesk/khata/internal/domain"
	"github.com/khatadesk/khata/internal/usecase"
	"github.com/khatadesk/khata/internal/usecase/mocks"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator("u"))

	user, err := uc.Register(ctx, usecase.RegisterInput{
		Email:    "owner@example.com",
		Name:     "Owner",
		Password: "correct horse",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash, "hash must not leave the use case")

	got, err := uc.Authenticate(ctx, "owner@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = uc.Authenticate(ctx, "owner@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	_, err = uc.Authenticate(ctx, "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator("u"))

	_, err := uc.Register(ctx, usecase.RegisterInput{
		Email:    "not-an-email",
		Password: "correct horse",
		Role:     domain.RoleAdmin,
	})
	assert.Error(t, err)

	_, err = uc.Register(ctx, usecase.RegisterInput{
		Email:    "owner@example.com",
		Password: "short",
		Role:     domain.RoleAdmin,
	})
	assert.Error(t, err)

	_, err = uc.Register(ctx, usecase.RegisterInput{
		Email:    "owner@example.com",
		Password: "correct horse",
		Role:     domain.Role("root"),
	})
	assert.Error(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator("u"))

	_, err := uc.Register(ctx, usecase.RegisterInput{
		Email:    "owner@example.com",
		Password: "correct horse",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = uc.Register(ctx, usecase.RegisterInput{
		Email:    "owner@example.com",
		Password: "another pass",
		Role:     domain.RoleViewer,
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}
