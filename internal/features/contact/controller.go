package contact

import (
	"go-ngo/internal/common/apperr"
	"go-ngo/internal/common/validation"

	"github.com/gofiber/fiber/v2"
)

type ContactController struct {
	ContactService ContactService
}

func NewContactController(contactService ContactService) *ContactController {
	return &ContactController{ContactService: contactService}
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Subject string `json:"subject" validate:"required,min=1"`
	Message string `json:"message" validate:"required,min=1"`
}

func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	var req CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	contact := &Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := ctrl.ContactService.Create(c.Context(), contact); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "contact": contact})
}

func (ctrl *ContactController) ListContacts(c *fiber.Ctx) error {
	contacts, err := ctrl.ContactService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "contacts": contacts})
}

func (ctrl *ContactController) GetContact(c *fiber.Ctx) error {
	contact, err := ctrl.ContactService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "contact": contact})
}

func (ctrl *ContactController) DeleteContact(c *fiber.Ctx) error {
	if err := ctrl.ContactService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Contact deleted"})
}
