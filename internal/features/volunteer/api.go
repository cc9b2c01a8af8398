package volunteer

import (
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

type VolunteerApi struct {
	controller *VolunteerController
	resolver   middleware.PrincipalResolver
}

func NewVolunteerApi(controller *VolunteerController, resolver middleware.PrincipalResolver) *VolunteerApi {
	return &VolunteerApi{controller: controller, resolver: resolver}
}

func (h *VolunteerApi) Setup(app *fiber.App) {
	volunteers := app.Group("/api/volunteers", middleware.Authenticate(h.resolver))

	volunteers.Get("/", middleware.RequireModulePermission("volunteers", rbac.ActionRead), h.controller.ListVolunteers)
	volunteers.Post("/", middleware.RequireModulePermission("volunteers", rbac.ActionCreate), h.controller.CreateVolunteer)
	volunteers.Get("/:id", middleware.RequireModulePermission("volunteers", rbac.ActionRead), h.controller.GetVolunteer)
	volunteers.Patch("/:id/status", middleware.RequireModulePermission("volunteers", rbac.ActionUpdate), h.controller.UpdateVolunteerStatus)
	volunteers.Patch("/:id/notes", middleware.RequireModulePermission("volunteers", rbac.ActionUpdate), h.controller.UpdateVolunteerNotes)
	volunteers.Post("/:id/events", middleware.RequireModulePermission("volunteers", rbac.ActionUpdate), h.controller.AddVolunteerEvent)
	volunteers.Put("/:id", middleware.RequireModulePermission("volunteers", rbac.ActionUpdate), h.controller.UpdateVolunteer)
	volunteers.Delete("/:id", middleware.RequireModulePermission("volunteers", rbac.ActionDelete), h.controller.DeleteVolunteer)
}
