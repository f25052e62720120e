package services

import (
	"errors"
	"fmt"
	"strings"

	"pinpost/internal/apperrors"
	"pinpost/internal/models"
	"pinpost/internal/repositories"
	"pinpost/internal/sanitize"
)

// AuthService handles registration and identity lookups. There is no secret:
// login is a lookup by name, and protected requests assert the name through
// the configured principal resolver.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new user from a display name. The name is trimmed and
// stripped of markup first; uniqueness is checked against the result.
func (s *AuthService) Register(name string) (*models.User, error) {
	sanitized := sanitize.Name(name)
	if sanitized == "" {
		return nil, apperrors.Validation("Name is required")
	}

	if existing, err := s.userRepo.GetByName(sanitized); err == nil && existing != nil {
		return nil, apperrors.Conflict("User already exists")
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := &models.User{Name: sanitized}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login resolves an existing user by name. No password is involved.
func (s *AuthService) Login(name string) (*models.User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, apperrors.Validation("Name is required")
	}

	user, err := s.userRepo.GetByName(trimmed)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Unauthorized("User not found")
		}
		return nil, fmt.Errorf("failed to look up user %s: %w", trimmed, err)
	}
	return user, nil
}

// ListUsers returns every registered user in creation order.
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}
