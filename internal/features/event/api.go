package event

import (
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

type EventApi struct {
	controller *EventController
	resolver   middleware.PrincipalResolver
}

func NewEventApi(controller *EventController, resolver middleware.PrincipalResolver) *EventApi {
	return &EventApi{controller: controller, resolver: resolver}
}

// Setup registers event routes. The public list only shows approved events
// cleared for display; admin paths go before the slug route.
func (h *EventApi) Setup(app *fiber.App) {
	events := app.Group("/api/events")

	events.Get("/", h.controller.ListApprovedEvents)

	auth := middleware.Authenticate(h.resolver)
	events.Get("/admin", auth, middleware.RequireModulePermission("events", rbac.ActionRead), h.controller.ListAllEvents)
	events.Get("/admin/:id", auth, middleware.RequireModulePermission("events", rbac.ActionRead), h.controller.GetEventByID)
	events.Post("/", auth, middleware.RequireModulePermission("events", rbac.ActionCreate), h.controller.CreateEvent)
	events.Patch("/:id/approve", auth, middleware.RequireModulePermission("events", rbac.ActionUpdate), h.controller.ApproveEvent)
	events.Put("/:id", auth, middleware.RequireModulePermission("events", rbac.ActionUpdate), h.controller.UpdateEvent)
	events.Delete("/:id", auth, middleware.RequireModulePermission("events", rbac.ActionDelete), h.controller.DeleteEvent)

	events.Get("/:slug", h.controller.GetEventBySlug)
}
