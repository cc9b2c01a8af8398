package role

import (
	"go-ngo/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RoleApi struct {
	controller *RoleController
	resolver   middleware.PrincipalResolver
}

func NewRoleApi(controller *RoleController, resolver middleware.PrincipalResolver) *RoleApi {
	return &RoleApi{controller: controller, resolver: resolver}
}

// Setup registers role registry routes. Role administration is reserved
// for the super admin.
func (h *RoleApi) Setup(app *fiber.App) {
	roles := app.Group("/api/roles",
		middleware.Authenticate(h.resolver),
		middleware.RequireRole("admin"),
	)

	roles.Post("/", h.controller.CreateRole)
	roles.Get("/", h.controller.ListRoles)
	roles.Get("/name/:name/permissions", h.controller.GetRolePermissions)
	roles.Get("/name/:name", h.controller.GetRoleByName)
	roles.Get("/:id", h.controller.GetRole)
	roles.Put("/:id", h.controller.UpdateRole)
	roles.Delete("/:id", h.controller.DeleteRole)
}
