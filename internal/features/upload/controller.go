package upload

import (
	"io"

	"go-ngo/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

// maxUploadSize caps a single object at 10 MiB.
const maxUploadSize = 10 << 20

type UploadController struct {
	UploadService UploadService
}

func NewUploadController(uploadService UploadService) *UploadController {
	return &UploadController{UploadService: uploadService}
}

func (ctrl *UploadController) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.BadRequest("No file uploaded")
	}
	if fileHeader.Size > maxUploadSize {
		return apperr.BadRequest("File too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperr.BadRequest("Could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apperr.BadRequest("Could not read uploaded file")
	}

	folder := c.FormValue("folder", "uploads")
	url, err := ctrl.UploadService.UploadFile(c.Context(), data, fileHeader.Filename, folder)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "url": url})
}
