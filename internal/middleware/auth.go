package middleware

import (
	"context"
	"strings"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/rbac"
	"go-ngo/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// principalKey is the locals slot the resolved principal lives in.
const principalKey = "principal"

// PrincipalResolver loads the current principal record by id. Implemented
// by the user repository; wired up via an fx adapter in main.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, id string) (*rbac.Principal, error)
}

// PrincipalFrom returns the principal attached by Authenticate.
func PrincipalFrom(c *fiber.Ctx) (*rbac.Principal, bool) {
	p, ok := c.Locals(principalKey).(*rbac.Principal)
	return p, ok
}

// Authenticate validates the bearer credential and attaches the resolved
// principal to the request. The token only identifies the principal;
// role, status and permissions are read fresh from the datastore.
func Authenticate(resolver PrincipalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			header := c.Get("Authorization")
			token = strings.TrimPrefix(header, "Bearer ")
		}
		if token == "" {
			return apperr.Unauthenticated("Authorization token required")
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			return apperr.Unauthenticated("Invalid or expired token")
		}

		principal, err := resolver.ResolvePrincipal(c.Context(), claims.UserID)
		if err != nil {
			return apperr.Unauthenticated("User not found")
		}

		if principal.Status != "active" {
			return apperr.Forbidden("User account is inactive")
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}
