package ports

import (
	"context"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
)

// AuthService defines the identity-session use cases. Sign-up and login both
// return a signed session token alongside the profile; logout revokes the
// presented token for the remainder of its lifetime.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	// RequestPasswordReset issues a single-use reset token. It never reveals
	// whether the email is registered.
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}
