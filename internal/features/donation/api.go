package donation

import (
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

type DonationApi struct {
	controller *DonationController
	resolver   middleware.PrincipalResolver
}

func NewDonationApi(controller *DonationController, resolver middleware.PrincipalResolver) *DonationApi {
	return &DonationApi{controller: controller, resolver: resolver}
}

// Setup registers donation routes. Creating a donation is public so the
// website donate flow works without an account; aggregate and admin paths
// go before the :id route.
func (h *DonationApi) Setup(app *fiber.App) {
	donations := app.Group("/api/donations")

	donations.Post("/", h.controller.CreateDonation)

	auth := middleware.Authenticate(h.resolver)
	read := middleware.RequireModulePermission("donations", rbac.ActionRead)

	donations.Get("/", auth, read, h.controller.ListDonations)
	donations.Get("/total", auth, read, h.controller.GetTotalDonations)
	donations.Get("/cause", auth, read, h.controller.GetDonationsByCause)
	donations.Get("/export", auth, read, h.controller.ExportDonations)
	donations.Get("/user/:userId", auth, h.controller.GetUserDonations)
	donations.Put("/:id", auth, middleware.RequireModulePermission("donations", rbac.ActionUpdate), h.controller.UpdateDonation)
	donations.Delete("/:id", auth, middleware.RequireModulePermission("donations", rbac.ActionDelete), h.controller.DeleteDonation)
	donations.Get("/:id", auth, read, h.controller.GetDonation)
}
