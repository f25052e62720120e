package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pinpost/internal/apperrors"
	"pinpost/internal/models"
	"pinpost/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// TokenResolver verifies a Bearer JWT minted at login. It is the hardened
// swap-in for HeaderResolver when client-asserted identity is not enough.
type TokenResolver struct {
	userRepo repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewTokenResolver creates a resolver that signs and verifies with secret.
func NewTokenResolver(userRepo repositories.UserRepository, secret string) *TokenResolver {
	return &TokenResolver{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour,
	}
}

// IssueToken mints a signed token carrying the user's name. The login
// handler includes it in the response when token mode is active.
func (r *TokenResolver) IssueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": user.Name,
		"exp":  time.Now().Add(r.tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	})

	signed, err := token.SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (r *TokenResolver) Resolve(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.Unauthorized("Authorization header is required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", apperrors.Unauthorized("Authorization header format must be 'Bearer <token>'")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.Unauthorized("Invalid or expired token")
	}
	name, _ := claims["name"].(string)
	if name == "" {
		return "", apperrors.Unauthorized("Invalid or expired token")
	}

	if _, lookupErr := r.userRepo.GetByName(name); lookupErr != nil {
		if errors.Is(lookupErr, repositories.ErrNotFound) {
			return "", apperrors.Unauthorized("User not found")
		}
		return "", fmt.Errorf("failed to resolve principal %s: %w", name, lookupErr)
	}
	return name, nil
}

// TokenIssuer is implemented by resolvers that can mint a credential at
// login. HeaderResolver does not; the login response then carries no token.
type TokenIssuer interface {
	IssueToken(user *models.User) (string, error)
}
