package middleware

import (
	"go-ngo/internal/common/apperr"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

// RequireRole allows the request when the principal's role is literally
// in the allowed set, or when it outranks at least one allowed role in
// the hierarchy. Admin always passes.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return apperr.Unauthenticated("Not authenticated")
		}

		if err := rbac.CheckRoleInSet(principal.Role, allowedRoles); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireHigherRole reads the target role from the request payload and
// allows only principals strictly above it in the hierarchy.
func RequireHigherRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return apperr.Unauthenticated("Not authenticated")
		}

		var body struct {
			Role string `json:"role"`
		}
		if err := c.BodyParser(&body); err != nil || body.Role == "" {
			return apperr.BadRequest("Target role not specified")
		}

		if err := rbac.CheckRoleAssignment(principal.Role, body.Role); err != nil {
			return err
		}
		return c.Next()
	}
}
