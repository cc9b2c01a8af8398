package contact

import (
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

type ContactApi struct {
	controller *ContactController
	resolver   middleware.PrincipalResolver
}

func NewContactApi(controller *ContactController, resolver middleware.PrincipalResolver) *ContactApi {
	return &ContactApi{controller: controller, resolver: resolver}
}

// Setup registers contact routes. Submitting the contact form is public;
// reading and deleting messages is staff-only.
func (h *ContactApi) Setup(app *fiber.App) {
	contacts := app.Group("/api/contacts")

	contacts.Post("/", h.controller.CreateContact)

	auth := middleware.Authenticate(h.resolver)
	contacts.Get("/", auth, middleware.RequireModulePermission("contacts", rbac.ActionRead), h.controller.ListContacts)
	contacts.Get("/:id", auth, middleware.RequireModulePermission("contacts", rbac.ActionRead), h.controller.GetContact)
	contacts.Delete("/:id", auth, middleware.RequireModulePermission("contacts", rbac.ActionDelete), h.controller.DeleteContact)
}
