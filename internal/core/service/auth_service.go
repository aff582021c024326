package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/avinash2017colab/part-time-tracker/internal/api/metrics"
	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

const resetTokenTTL = time.Hour

// TokenStore abstracts the Redis-backed token state: single-use password
// reset tokens and the revoked-session denylist.
type TokenStore interface {
	SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	// ConsumeResetToken returns the user id the token was issued for and
	// invalidates it. A missing or already-consumed token yields domain.ErrInvalidToken.
	ConsumeResetToken(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string, until time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthService implements sign-up, login, logout and password reset.
type AuthService struct {
	repo      ports.AuthRepository
	tokens    TokenStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens TokenStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, tokens: tokens, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// SignUp creates the account and its profile document, then opens a session
// so a fresh sign-up lands on the dashboard without a second round trip.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if len(password) < domain.MinPasswordLength {
		return "", nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}

	metrics.SignupsTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Msg("account created")

	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same generic failure as a bad password; the cause is logged only.
			s.log.Debug().Str("email", email).Msg("login for unknown account")
			metrics.AuthFailuresTotal.WithLabelValues("unknown_account").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthFailuresTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout places the presented token on the denylist until it would have
// expired anyway. An unparseable token is already unusable; treat it as done.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil
	}

	until := time.Now().Add(s.tokenTTL)
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		until = exp.Time
	}
	return s.tokens.Revoke(ctx, token, until)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// RequestPasswordReset issues a single-use token with a one-hour lifetime.
// Delivery is an external concern; the token is logged for the mail channel.
// The response never reveals whether the email is registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("email", email).Msg("password reset for unknown account")
			return nil
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}
	if err := s.tokens.SaveResetToken(ctx, token, user.ID, resetTokenTTL); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Str("reset_token", token).Msg("password reset token issued")
	return nil
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrWeakPassword
	}

	userID, err := s.tokens.ConsumeResetToken(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password reset")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func generateResetToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
