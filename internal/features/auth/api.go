package auth

import (
	"go-ngo/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
	resolver   middleware.PrincipalResolver
}

func NewAuthApi(controller *AuthController, resolver middleware.PrincipalResolver) *AuthApi {
	return &AuthApi{controller: controller, resolver: resolver}
}

// Setup registers auth routes. Register/login/logout are public; the
// profile routes require a resolved principal.
func (h *AuthApi) Setup(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", h.controller.Register)
	auth.Post("/login", h.controller.Login)
	auth.Post("/logout", h.controller.Logout)

	auth.Get("/me", middleware.Authenticate(h.resolver), h.controller.Me)
	auth.Get("/profile", middleware.Authenticate(h.resolver), h.controller.Me)
	auth.Put("/profile", middleware.Authenticate(h.resolver), h.controller.UpdateProfile)
}
