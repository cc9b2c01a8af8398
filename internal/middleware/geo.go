package middleware

import (
	"go-ngo/internal/common/apperr"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

// RequireGeoAccess allows principals whose broadest geographic scope is
// at least as broad as the required level. Admin bypasses.
func RequireGeoAccess(requiredLevel string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return apperr.Unauthenticated("Not authenticated")
		}

		if err := rbac.CheckGeoAccess(principal.Role, principal.Geo, requiredLevel); err != nil {
			return err
		}
		return c.Next()
	}
}
