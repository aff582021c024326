package domain

import (
	"errors"
	"time"
)

// MinPasswordLength mirrors the auth rule the product launched with.
const MinPasswordLength = 6

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrWeakPassword = errors.New("password must be at least 6 characters")
var ErrInvalidToken = errors.New("invalid or expired token")

// User models an authenticated account. The profile persisted at sign-up
// carries only email and created_at; the password hash never appears in any
// API response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
