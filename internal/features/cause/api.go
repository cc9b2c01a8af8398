package cause

import (
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

type CauseApi struct {
	controller *CauseController
	resolver   middleware.PrincipalResolver
}

func NewCauseApi(controller *CauseController, resolver middleware.PrincipalResolver) *CauseApi {
	return &CauseApi{controller: controller, resolver: resolver}
}

// Setup registers cause routes. Reads are public; writes run through the
// causes module permissions. Literal paths go before the slug route.
func (h *CauseApi) Setup(app *fiber.App) {
	causes := app.Group("/api/causes")

	causes.Get("/", h.controller.ListCauses)
	causes.Get("/active", h.controller.ListActiveCauses)
	causes.Get("/category/:category", h.controller.ListCausesByCategory)

	auth := middleware.Authenticate(h.resolver)
	causes.Post("/", auth, middleware.RequireModulePermission("causes", rbac.ActionCreate), h.controller.CreateCause)
	causes.Put("/:id", auth, middleware.RequireModulePermission("causes", rbac.ActionUpdate), h.controller.UpdateCause)
	causes.Patch("/:id/status", auth, middleware.RequireModulePermission("causes", rbac.ActionUpdate), h.controller.UpdateCauseStatus)
	causes.Delete("/:id", auth, middleware.RequireModulePermission("causes", rbac.ActionDelete), h.controller.DeleteCause)

	causes.Get("/:slug", h.controller.GetCauseBySlug)
}
