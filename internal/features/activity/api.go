package activity

import (
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

type ActivityApi struct {
	controller *ActivityController
	resolver   middleware.PrincipalResolver
}

func NewActivityApi(controller *ActivityController, resolver middleware.PrincipalResolver) *ActivityApi {
	return &ActivityApi{controller: controller, resolver: resolver}
}

func (h *ActivityApi) Setup(app *fiber.App) {
	activities := app.Group("/api/activities", middleware.Authenticate(h.resolver))

	activities.Get("/recent", middleware.RequireRole(rbac.RoleAdmin), h.controller.GetRecentActivities)
}
