package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pinpost/internal/auth"
	"pinpost/internal/middleware"
	"pinpost/internal/models"
	"pinpost/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedApp(resolver auth.PrincipalResolver) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", middleware.Identity(resolver), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"principal": middleware.Principal(c)})
	})
	return app
}

func registeredUsers(t *testing.T, names ...string) repositories.UserRepository {
	t.Helper()
	store := repositories.NewMemoryStore()
	users := store.Users()
	for _, name := range names {
		require.NoError(t, users.Create(&models.User{Name: name}))
	}
	return users
}

func TestHeaderResolver(t *testing.T) {
	users := registeredUsers(t, "alice")
	app := guardedApp(auth.NewHeaderResolver(users))

	// Missing header.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Unknown user.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(auth.HeaderName, "ghost")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Known user is bound as the principal.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(auth.HeaderName, "alice")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTokenResolverRoundTrip(t *testing.T) {
	users := registeredUsers(t, "alice")
	resolver := auth.NewTokenResolver(users, "test-secret")
	app := guardedApp(resolver)

	token, err := resolver.IssueToken(&models.User{ID: "u1", Name: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTokenResolverRejectsBadTokens(t *testing.T) {
	users := registeredUsers(t, "alice")
	app := guardedApp(auth.NewTokenResolver(users, "test-secret"))

	// No header at all.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Malformed scheme.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Token signed with a different secret.
	otherResolver := auth.NewTokenResolver(users, "other-secret")
	token, err := otherResolver.IssueToken(&models.User{ID: "u1", Name: "alice"})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTokenResolverRejectsUnknownUser(t *testing.T) {
	users := registeredUsers(t, "alice")
	resolver := auth.NewTokenResolver(users, "test-secret")
	app := guardedApp(resolver)

	// Valid signature, but the user was never registered.
	token, err := resolver.IssueToken(&models.User{ID: "u2", Name: "ghost"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
