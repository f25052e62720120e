// Package auth resolves the acting principal from a request. The identity
// model is pluggable: the default resolver trusts the X-User-Name header
// (the client-asserted identity this system was specified with), and a JWT
// resolver is available for deployments that want a verifiable claim.
package auth

import (
	"errors"
	"fmt"

	"pinpost/internal/apperrors"
	"pinpost/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HeaderName carries the claimed identity on protected requests.
const HeaderName = "X-User-Name"

// PrincipalResolver extracts and verifies the identity claim of a request,
// returning the acting user's name.
type PrincipalResolver interface {
	Resolve(c *fiber.Ctx) (string, error)
}

// HeaderResolver trusts the X-User-Name header after checking the user
// exists. The claim is never cryptographically verified; that is the
// documented trust model, not an oversight.
type HeaderResolver struct {
	userRepo repositories.UserRepository
}

// NewHeaderResolver creates a resolver backed by the user repository.
func NewHeaderResolver(userRepo repositories.UserRepository) *HeaderResolver {
	return &HeaderResolver{userRepo: userRepo}
}

func (r *HeaderResolver) Resolve(c *fiber.Ctx) (string, error) {
	name := c.Get(HeaderName)
	if name == "" {
		return "", apperrors.Unauthorized(fmt.Sprintf("Missing %s header", HeaderName))
	}

	if _, err := r.userRepo.GetByName(name); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", apperrors.Unauthorized("User not found")
		}
		return "", fmt.Errorf("failed to resolve principal %s: %w", name, err)
	}
	return name, nil
}
