package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vsilva/minhas_financas_app/internal/apperrors"
	"github.com/vsilva/minhas_financas_app/internal/core/domain"
	portsrepo "github.com/vsilva/minhas_financas_app/internal/core/ports/repositories"
	portssvc "github.com/vsilva/minhas_financas_app/internal/core/ports/services"
	"github.com/vsilva/minhas_financas_app/internal/dto"
)

// UserService implements account registration and credential verification.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// Authenticate looks the account up by email and compares the stored password
// with the supplied one. The two failure messages are deliberately distinct.
// TODO: hash passwords with bcrypt; comparison is currently verbatim string
// equality and registration stores the password as received.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAuthenticationError("user not found for the given email")
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if user.Password != password {
		return nil, apperrors.NewAuthenticationError("invalid password")
	}
	return user, nil
}

// Register creates a new account. The uniqueness check runs first; the store
// insert is never attempted for a duplicate email.
func (s *UserService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	if err := s.ValidateEmail(ctx, req.Email); err != nil {
		return nil, err
	}

	user := domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return saved, nil
}

// ValidateEmail fails when the email is already registered.
func (s *UserService) ValidateEmail(ctx context.Context, email string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return apperrors.NewBusinessRuleError("a user is already registered with this email")
	}
	return nil
}

// GetUserByID is a pass-through lookup; a miss is apperrors.ErrNotFound.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
