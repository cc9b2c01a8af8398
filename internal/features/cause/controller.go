package cause

import (
	"time"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/common/validation"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type CauseController struct {
	CauseService CauseService
}

func NewCauseController(causeService CauseService) *CauseController {
	return &CauseController{CauseService: causeService}
}

type CreateCauseRequest struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Description string     `json:"description" validate:"required,min=10"`
	Image       string     `json:"image" validate:"omitempty,url"`
	Category    string     `json:"category" validate:"required,oneof=health education environment other"`
	Goal        float64    `json:"goal" validate:"required,gt=0"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type UpdateCauseRequest struct {
	Title       string     `json:"title" validate:"omitempty,min=3"`
	Description string     `json:"description" validate:"omitempty,min=10"`
	Image       string     `json:"image" validate:"omitempty,url"`
	Category    string     `json:"category" validate:"omitempty,oneof=health education environment other"`
	Goal        *float64   `json:"goal" validate:"omitempty,gt=0"`
	EndDate     *time.Time `json:"endDate"`
}

type CauseStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

func (ctrl *CauseController) CreateCause(c *fiber.Ctx) error {
	var req CreateCauseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	cause := &Cause{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Goal:        req.Goal,
		EndDate:     req.EndDate,
	}
	if req.StartDate != nil {
		cause.StartDate = *req.StartDate
	}
	if err := ctrl.CauseService.Create(c.Context(), cause); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "cause": cause})
}

func (ctrl *CauseController) ListCauses(c *fiber.Ctx) error {
	causes, err := ctrl.CauseService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "causes": causes})
}

func (ctrl *CauseController) ListActiveCauses(c *fiber.Ctx) error {
	causes, err := ctrl.CauseService.ListActive(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "causes": causes})
}

func (ctrl *CauseController) ListCausesByCategory(c *fiber.Ctx) error {
	causes, err := ctrl.CauseService.ListByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "causes": causes})
}

func (ctrl *CauseController) GetCauseBySlug(c *fiber.Ctx) error {
	cause, err := ctrl.CauseService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "cause": cause})
}

func (ctrl *CauseController) UpdateCause(c *fiber.Ctx) error {
	var req UpdateCauseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	set := bson.M{}
	if req.Title != "" {
		set["title"] = req.Title
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Image != "" {
		set["image"] = req.Image
	}
	if req.Category != "" {
		set["category"] = req.Category
	}
	if req.Goal != nil {
		set["goal"] = *req.Goal
	}
	if req.EndDate != nil {
		set["end_date"] = *req.EndDate
	}
	if len(set) == 0 {
		return apperr.BadRequest("Nothing to update")
	}

	cause, err := ctrl.CauseService.Update(c.Context(), c.Params("id"), set)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "cause": cause})
}

func (ctrl *CauseController) UpdateCauseStatus(c *fiber.Ctx) error {
	var req CauseStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	cause, err := ctrl.CauseService.SetStatus(c.Context(), c.Params("id"), *req.IsActive)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "cause": cause})
}

func (ctrl *CauseController) DeleteCause(c *fiber.Ctx) error {
	if err := ctrl.CauseService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Cause deleted"})
}
