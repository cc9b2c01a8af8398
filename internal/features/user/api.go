package user

import (
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	resolver   middleware.PrincipalResolver
}

func NewUserApi(controller *UserController, resolver middleware.PrincipalResolver) *UserApi {
	return &UserApi{controller: controller, resolver: resolver}
}

// Setup registers user management routes. Listing and mutation are
// restricted by role tier; role changes additionally go through the
// strict hierarchy comparison.
func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/users", middleware.Authenticate(h.resolver))

	users.Get("/",
		middleware.RequireRole("admin", "country-admin", "state-admin"),
		middleware.RequirePermission("users"),
		h.controller.ListUsers,
	)
	users.Post("/",
		middleware.RequireRole("admin", "country-admin", "state-admin"),
		h.controller.CreateUser,
	)
	users.Get("/region/:regionId",
		middleware.RequireRole("admin", "country-admin", "state-admin", "regional-admin"),
		middleware.RequireGeoAccess("region"),
		h.controller.ListUsersByRegion,
	)
	users.Get("/:id",
		middleware.RequireRole("admin", "country-admin", "state-admin", "regional-admin"),
		h.controller.GetUser,
	)
	users.Put("/:id", RequireSelfOrAdmin(), h.controller.UpdateUser)
	users.Patch("/:id/status",
		middleware.RequireRole("admin", "country-admin", "state-admin"),
		h.controller.UpdateStatus,
	)
	users.Patch("/:id/role",
		middleware.RequireHigherRole(),
		h.controller.UpdateRole,
	)
	users.Patch("/:id/designation",
		middleware.RequireRole("admin", "country-admin", "state-admin"),
		h.controller.UpdateDesignation,
	)
	users.Delete("/:id",
		middleware.RequireRole("admin", "country-admin"),
		h.controller.DeleteUser,
	)
	users.Get("/:id/permissions", h.controller.GetPermissions)
	users.Put("/:id/permissions",
		middleware.RequireRole("admin", "country-admin", "state-admin"),
		middleware.RequireModulePermission("users", rbac.ActionUpdate),
		h.controller.UpdatePermissions,
	)
}
