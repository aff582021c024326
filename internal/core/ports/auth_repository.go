package ports

import (
	"context"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
)

// AuthRepository defines persistence for user accounts and profiles.
type AuthRepository interface {
	// Create inserts a new account. Returns domain.ErrUserExists when the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
