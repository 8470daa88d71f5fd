package usecase

import (
	"context"

	"github.com/khatadesk/khata/internal/domain"
)

// ProfileUseCase handles business profiles.
type ProfileUseCase struct {
	profiles   ProfileRepository
	idGen      IDGenerator
	statements *StatementInvalidator
}

// NewProfileUseCase creates a new ProfileUseCase.
func NewProfileUseCase(profiles ProfileRepository, idGen IDGenerator, statements *StatementInvalidator) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles, idGen: idGen, statements: statements}
}

// CreateProfileInput represents input for creating a profile.
type CreateProfileInput struct {
	BusinessName string
	Address      string
	Phone        string
	Type         domain.ProfileType
}

// CreateProfile creates a profile. The first profile ever created becomes
// active automatically.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, input CreateProfileInput) (*domain.Profile, error) {
	if err := domain.ValidateName(input.BusinessName); err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidProfileType
	}

	existing, err := uc.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	profile := &domain.Profile{
		ID:           uc.idGen.Generate(),
		BusinessName: input.BusinessName,
		Address:      input.Address,
		Phone:        input.Phone,
		Type:         input.Type,
		Active:       len(existing) == 0,
	}
	if err := uc.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile retrieves a profile by ID.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	return uc.profiles.GetByID(ctx, id)
}

// GetActiveProfile returns the currently active profile.
func (uc *ProfileUseCase) GetActiveProfile(ctx context.Context) (*domain.Profile, error) {
	return uc.profiles.GetActive(ctx)
}

// ListProfiles lists all profiles.
func (uc *ProfileUseCase) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	return uc.profiles.List(ctx)
}

// UpdateProfileInput represents input for updating a profile.
type UpdateProfileInput struct {
	ID           string
	BusinessName string
	Address      string
	Phone        string
	Type         domain.ProfileType
}

// UpdateProfile updates a profile's details. The active flag only changes
// through Activate.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	if err := domain.ValidateName(input.BusinessName); err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidProfileType
	}
	profile, err := uc.profiles.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	profile.BusinessName = input.BusinessName
	profile.Address = input.Address
	profile.Phone = input.Phone
	profile.Type = input.Type
	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	uc.statements.Invalidate(ctx)
	return profile, nil
}

// Activate makes the given profile the active one.
func (uc *ProfileUseCase) Activate(ctx context.Context, id string) error {
	if _, err := uc.profiles.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.profiles.Activate(ctx, id); err != nil {
		return err
	}
	uc.statements.Invalidate(ctx)
	return nil
}

// DeleteProfile removes a profile. Deleting the active profile leaves no
// profile active until the next Activate.
func (uc *ProfileUseCase) DeleteProfile(ctx context.Context, id string) error {
	if _, err := uc.profiles.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.profiles.Delete(ctx, id); err != nil {
		return err
	}
	uc.statements.Invalidate(ctx)
	return nil
}
