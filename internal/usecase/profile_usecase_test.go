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

func TestCreateProfile_FirstBecomesActive(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProfileUseCase(mocks.NewMockProfileRepository(), mocks.NewMockIDGenerator("p"), nil)

	first, err := uc.CreateProfile(ctx, usecase.CreateProfileInput{
		BusinessName: "Khan Kirana",
		Type:         domain.ProfileTypeBusiness,
	})
	require.NoError(t, err)
	assert.True(t, first.Active)

	second, err := uc.CreateProfile(ctx, usecase.CreateProfileInput{
		BusinessName: "Home",
		Type:         domain.ProfileTypeHome,
	})
	require.NoError(t, err)
	assert.False(t, second.Active)

	active, err := uc.GetActiveProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)
}

func TestActivateSwitchesProfile(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProfileUseCase(mocks.NewMockProfileRepository(), mocks.NewMockIDGenerator("p"), nil)

	first, err := uc.CreateProfile(ctx, usecase.CreateProfileInput{
		BusinessName: "Khan Kirana",
		Type:         domain.ProfileTypeBusiness,
	})
	require.NoError(t, err)
	second, err := uc.CreateProfile(ctx, usecase.CreateProfileInput{
		BusinessName: "Home",
		Type:         domain.ProfileTypeHome,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Activate(ctx, second.ID))

	active, err := uc.GetActiveProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	got, err := uc.GetProfile(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	assert.ErrorIs(t, uc.Activate(ctx, "missing"), domain.ErrProfileNotFound)
}

func TestCreateProfile_InvalidType(t *testing.T) {
	uc := usecase.NewProfileUseCase(mocks.NewMockProfileRepository(), mocks.NewMockIDGenerator("p"), nil)
	_, err := uc.CreateProfile(context.Background(), usecase.CreateProfileInput{
		BusinessName: "Khan Kirana",
		Type:         domain.ProfileType("corporate"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidProfileType)
}
