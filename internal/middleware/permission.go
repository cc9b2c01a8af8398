package middleware

import (
	"go-ngo/internal/common/apperr"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

// RequireModulePermission evaluates an explicit action on a module
// against the principal's permission snapshot.
func RequireModulePermission(module string, action rbac.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return apperr.Unauthenticated("Not authenticated")
		}

		if err := rbac.Evaluate(principal, module, action); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequirePermission evaluates module access with the action inferred from
// the HTTP method.
//
// Deprecated: prefer RequireModulePermission with an explicit action.
// This exists for routes that guard several methods with one handler.
func RequirePermission(module string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return apperr.Unauthenticated("Not authenticated")
		}

		if err := rbac.EvaluateMethod(principal, module, c.Method()); err != nil {
			return err
		}
		return c.Next()
	}
}
