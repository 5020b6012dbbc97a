package service

import (
	"context" // Request-scoped cancellation
	"errors"  // Error matching

	"cashflow_system/internal/domain" // Importing domain models
	"cashflow_system/internal/store"  // Database queries
	"cashflow_system/internal/utils"  // Password hashing

	"gorm.io/gorm" // ORM library
)

// AuthService checks credentials and resolves session identities
type AuthService struct {
	db *gorm.DB // Database handle
}

// NewAuthService creates an AuthService
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate returns the user when username exists and password matches
// its stored hash. Any mismatch yields domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := store.FindUserByUsername(s.db.WithContext(ctx), username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(user.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// UserByID loads the user a session is bound to
func (s *AuthService) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	return store.FindUserByID(s.db.WithContext(ctx), id)
}
