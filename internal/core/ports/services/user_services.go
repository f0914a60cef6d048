package services

import (
	"context"

	"github.com/vsilva/minhas_financas_app/internal/core/domain"
	"github.com/vsilva/minhas_financas_app/internal/dto"
)

// UserReaderSvc defines read-only user operations.
type UserReaderSvc interface {
	// GetUserByID retrieves a user; a miss is apperrors.ErrNotFound.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserAuthSvc defines account creation and credential verification.
type UserAuthSvc interface {
	// Authenticate verifies email/password and returns the stored account.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// Register creates a new account after checking email uniqueness.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// ValidateEmail fails when the email is already registered.
	ValidateEmail(ctx context.Context, email string) error
}

// UserSvcFacade combines all user service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserAuthSvc
}
