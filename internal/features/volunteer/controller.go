package volunteer

import (
	"time"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/common/validation"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type VolunteerController struct {
	VolunteerService VolunteerService
}

func NewVolunteerController(volunteerService VolunteerService) *VolunteerController {
	return &VolunteerController{VolunteerService: volunteerService}
}

type CreateVolunteerRequest struct {
	Name      string   `json:"name" validate:"required,min=1"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone" validate:"required,min=10"`
	Location  string   `json:"location" validate:"required,min=1"`
	Interests []string `json:"interests"`
	Skills    string   `json:"skills"`
	Notes     string   `json:"notes"`
}

type UpdateVolunteerRequest struct {
	Name      string   `json:"name" validate:"omitempty,min=1"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Phone     string   `json:"phone" validate:"omitempty,min=10"`
	Location  string   `json:"location" validate:"omitempty,min=1"`
	Interests []string `json:"interests"`
	Skills    string   `json:"skills"`
}

type VolunteerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive Pending"`
}

type VolunteerNotesRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type VolunteerEventRequest struct {
	EventName string    `json:"eventName" validate:"required,min=1"`
	Location  string    `json:"location"`
	Date      time.Time `json:"date" validate:"required"`
	Hours     float64   `json:"hours" validate:"omitempty,gte=0"`
	Status    string    `json:"status" validate:"omitempty,oneof=Completed Upcoming"`
}

func (ctrl *VolunteerController) CreateVolunteer(c *fiber.Ctx) error {
	var req CreateVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	volunteer := &Volunteer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		Interests: req.Interests,
		Skills:    req.Skills,
		Notes:     req.Notes,
	}
	if err := ctrl.VolunteerService.Create(c.Context(), volunteer); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": volunteer})
}

func (ctrl *VolunteerController) ListVolunteers(c *fiber.Ctx) error {
	volunteers, err := ctrl.VolunteerService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": volunteers})
}

func (ctrl *VolunteerController) GetVolunteer(c *fiber.Ctx) error {
	volunteer, err := ctrl.VolunteerService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": volunteer})
}

func (ctrl *VolunteerController) UpdateVolunteer(c *fiber.Ctx) error {
	var req UpdateVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	set := bson.M{}
	fields := map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"phone":    req.Phone,
		"location": req.Location,
		"skills":   req.Skills,
	}
	for field, value := range fields {
		if value != "" {
			set[field] = value
		}
	}
	if req.Interests != nil {
		set["interests"] = req.Interests
	}
	if len(set) == 0 {
		return apperr.BadRequest("Nothing to update")
	}

	volunteer, err := ctrl.VolunteerService.Update(c.Context(), c.Params("id"), set)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": volunteer})
}

func (ctrl *VolunteerController) UpdateVolunteerStatus(c *fiber.Ctx) error {
	var req VolunteerStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	volunteer, err := ctrl.VolunteerService.SetStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": volunteer})
}

func (ctrl *VolunteerController) UpdateVolunteerNotes(c *fiber.Ctx) error {
	var req VolunteerNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	volunteer, err := ctrl.VolunteerService.SetNotes(c.Context(), c.Params("id"), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": volunteer})
}

func (ctrl *VolunteerController) AddVolunteerEvent(c *fiber.Ctx) error {
	var req VolunteerEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	event := VolunteerEvent{
		EventName: req.EventName,
		Location:  req.Location,
		Date:      req.Date,
		Hours:     req.Hours,
		Status:    req.Status,
	}
	volunteer, err := ctrl.VolunteerService.AddEvent(c.Context(), c.Params("id"), event)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": volunteer})
}

func (ctrl *VolunteerController) DeleteVolunteer(c *fiber.Ctx) error {
	if err := ctrl.VolunteerService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}
