package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/khatadesk/khata/internal/domain"
)

// UserUseCase handles API user management.
type UserUseCase struct {
	users UserRepository
	idGen IDGenerator
	// Now returns the current time; overridable in tests.
	Now func() time.Time
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(users UserRepository, idGen IDGenerator) *UserUseCase {
	return &UserUseCase{users: users, idGen: idGen, Now: time.Now}
}

// RegisterInput represents input for registering a user.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role
}

// Register creates a new user with a bcrypt-hashed password.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, errors.New("invalid role")
	}

	if existing, err := uc.users.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := uc.Now().UTC()
	user := &domain.User{
		ID:           uc.idGen.Generate(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Never hand the hash back out.
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies credentials and returns the user on success.
func (uc *UserUseCase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidPassword
	}
	if err := verifyPassword(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidPassword
	}

	user.PasswordHash = ""
	return user, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// ListUsers lists all users.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
