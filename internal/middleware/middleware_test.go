package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/rbac"
	"go-ngo/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newTestApp mirrors the production error handling so guard failures land
// with their real status codes.
func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *apperr.Error
			if errors.As(err, &appErr) {
				return c.Status(appErr.Code).JSON(fiber.Map{"success": false, "message": appErr.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
		},
	})
}

// seedPrincipal injects a principal the way Authenticate would.
func seedPrincipal(p *rbac.Principal) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(principalKey, p)
		return c.Next()
	}
}

func okHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

type stubResolver struct {
	principal *rbac.Principal
	err       error
}

func (s *stubResolver) ResolvePrincipal(ctx context.Context, id string) (*rbac.Principal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.principal, nil
}

func TestAuthenticateMissingToken(t *testing.T) {
	app := newTestApp()
	app.Get("/", Authenticate(&stubResolver{}), okHandler)

	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthenticateBearerHeader(t *testing.T) {
	id := primitive.NewObjectID()
	token, err := utils.GenerateToken(id, "user")
	require.NoError(t, err)

	resolver := &stubResolver{principal: &rbac.Principal{
		ID:     id,
		Role:   "user",
		Status: "active",
	}}

	app := newTestApp()
	app.Get("/", Authenticate(resolver), func(c *fiber.Ctx) error {
		p, ok := PrincipalFrom(c)
		require.True(t, ok)
		assert.Equal(t, id, p.ID)
		return okHandler(c)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	id := primitive.NewObjectID()
	token, err := utils.GenerateToken(id, "user")
	require.NoError(t, err)

	resolver := &stubResolver{principal: &rbac.Principal{ID: id, Role: "user", Status: "inactive"}}

	app := newTestApp()
	app.Get("/", Authenticate(resolver), okHandler)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	token, err := utils.GenerateToken(primitive.NewObjectID(), "user")
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/", Authenticate(&stubResolver{err: errors.New("no documents")}), okHandler)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{"admin", fiber.StatusOK},
		{"country-admin", fiber.StatusOK},
		{"user", fiber.StatusForbidden},
	}

	for _, tc := range cases {
		app := newTestApp()
		app.Get("/", seedPrincipal(&rbac.Principal{Role: tc.role}), RequireRole("country-admin"), okHandler)

		res, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.StatusCode, tc.role)
	}
}

func TestRequireHigherRoleMissingTarget(t *testing.T) {
	app := newTestApp()
	app.Patch("/", seedPrincipal(&rbac.Principal{Role: "country-admin"}), RequireHigherRole(), okHandler)

	req := httptest.NewRequest("PATCH", "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestRequireHigherRole(t *testing.T) {
	cases := []struct {
		actor  string
		target string
		want   int
	}{
		{"country-admin", "district-admin", fiber.StatusOK},
		{"district-admin", "country-admin", fiber.StatusForbidden},
		{"state-admin", "state-admin", fiber.StatusForbidden},
		{"admin", "user", fiber.StatusOK},
	}

	for _, tc := range cases {
		app := newTestApp()
		app.Patch("/", seedPrincipal(&rbac.Principal{Role: tc.actor}), RequireHigherRole(), okHandler)

		req := httptest.NewRequest("PATCH", "/", strings.NewReader(`{"role":"`+tc.target+`"}`))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.StatusCode, "%s -> %s", tc.actor, tc.target)
	}
}

func TestRequireModulePermission(t *testing.T) {
	principal := &rbac.Principal{
		Role:        "user",
		Permissions: rbac.Matrix{"blogs": {Read: true}},
	}

	app := newTestApp()
	app.Get("/blogs", seedPrincipal(principal), RequireModulePermission("blogs", rbac.ActionRead), okHandler)
	app.Delete("/blogs", seedPrincipal(principal), RequireModulePermission("blogs", rbac.ActionDelete), okHandler)
	app.Get("/donations", seedPrincipal(principal), RequireModulePermission("donations", rbac.ActionRead), okHandler)

	res, err := app.Test(httptest.NewRequest("GET", "/blogs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("DELETE", "/blogs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("GET", "/donations", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}

func TestRequirePermissionInfersActionFromMethod(t *testing.T) {
	principal := &rbac.Principal{
		Role:        "user",
		Permissions: rbac.Matrix{"forum": {Read: true, Create: true}},
	}

	app := newTestApp()
	app.All("/forum", seedPrincipal(principal), RequirePermission("forum"), okHandler)

	res, err := app.Test(httptest.NewRequest("GET", "/forum", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("POST", "/forum", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("DELETE", "/forum", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}

func TestRequireGeoAccess(t *testing.T) {
	app := newTestApp()
	app.Get("/broad", seedPrincipal(&rbac.Principal{Role: "state-admin", Geo: rbac.Geo{Country: "IN"}}), RequireGeoAccess("region"), okHandler)
	app.Get("/narrow", seedPrincipal(&rbac.Principal{Role: "block-admin", Geo: rbac.Geo{Block: "b1"}}), RequireGeoAccess("region"), okHandler)
	app.Get("/none", seedPrincipal(&rbac.Principal{Role: "user"}), RequireGeoAccess("area"), okHandler)

	res, err := app.Test(httptest.NewRequest("GET", "/broad", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("GET", "/narrow", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("GET", "/none", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}
