package upload

import (
	"go-ngo/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UploadApi struct {
	controller *UploadController
	resolver   middleware.PrincipalResolver
}

func NewUploadApi(controller *UploadController, resolver middleware.PrincipalResolver) *UploadApi {
	return &UploadApi{controller: controller, resolver: resolver}
}

func (h *UploadApi) Setup(app *fiber.App) {
	app.Post("/api/upload", middleware.Authenticate(h.resolver), h.controller.UploadFile)
}
