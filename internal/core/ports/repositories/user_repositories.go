package repositories

import (
	"context"

	"github.com/vsilva/minhas_financas_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by their email (exact match).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether any user is registered with the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and returns it with the store-assigned ID.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
