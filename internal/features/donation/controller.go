package donation

import (
	"go-ngo/internal/common/apperr"
	"go-ngo/internal/common/validation"
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DonationController struct {
	DonationService DonationService
}

func NewDonationController(donationService DonationService) *DonationController {
	return &DonationController{DonationService: donationService}
}

type CreateDonationRequest struct {
	Name          string  `json:"name" validate:"required,min=3"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required,min=10"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	CauseID       string  `json:"causeId" validate:"omitempty,len=24,hexadecimal"`
	CustomCause   string  `json:"customCause"`
	Message       string  `json:"message"`
	PaymentID     string  `json:"paymentId" validate:"required,min=3"`
	Status        string  `json:"status" validate:"omitempty,oneof=pending completed failed"`
	Receipt       string  `json:"receipt"`
	AadharNumber  string  `json:"aadharNumber" validate:"omitempty,len=12,numeric"`
	PanCardNumber string  `json:"panCardNumber" validate:"omitempty,len=10,alphanum"`
}

type UpdateDonationRequest struct {
	Status  string `json:"status" validate:"omitempty,oneof=pending completed failed"`
	Receipt string `json:"receipt"`
	Message string `json:"message"`
}

func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var req CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	donation := &Donation{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Amount:        req.Amount,
		CustomCause:   req.CustomCause,
		Message:       req.Message,
		PaymentID:     req.PaymentID,
		Status:        req.Status,
		Receipt:       req.Receipt,
		AadharNumber:  req.AadharNumber,
		PanCardNumber: req.PanCardNumber,
	}
	if req.CauseID != "" {
		causeID, err := primitive.ObjectIDFromHex(req.CauseID)
		if err != nil {
			return apperr.BadRequest("Invalid cause id")
		}
		donation.CauseID = &causeID
	}
	// Donors who are signed in get the donation attached to their account.
	if principal, ok := middleware.PrincipalFrom(c); ok {
		donation.UserID = &principal.ID
	}

	if err := ctrl.DonationService.Create(c.Context(), donation); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Donation successful",
		"donation": donation,
	})
}

func (ctrl *DonationController) ListDonations(c *fiber.Ctx) error {
	donations, err := ctrl.DonationService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "donations": donations})
}

func (ctrl *DonationController) GetDonation(c *fiber.Ctx) error {
	donation, err := ctrl.DonationService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "donation": donation})
}

// GetUserDonations only serves the caller's own history; admins can read
// anyone's.
func (ctrl *DonationController) GetUserDonations(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperr.Unauthenticated("Not authenticated")
	}
	userID := c.Params("userId")
	if principal.Role != rbac.RoleAdmin && principal.ID.Hex() != userID {
		return apperr.Forbidden("You can only view your own donations")
	}

	donations, err := ctrl.DonationService.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "donations": donations})
}

func (ctrl *DonationController) UpdateDonation(c *fiber.Ctx) error {
	var req UpdateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	set := bson.M{}
	if req.Status != "" {
		set["status"] = req.Status
	}
	if req.Receipt != "" {
		set["receipt"] = req.Receipt
	}
	if req.Message != "" {
		set["message"] = req.Message
	}
	if len(set) == 0 {
		return apperr.BadRequest("Nothing to update")
	}

	donation, err := ctrl.DonationService.Update(c.Context(), c.Params("id"), set)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "donation": donation})
}

func (ctrl *DonationController) DeleteDonation(c *fiber.Ctx) error {
	if err := ctrl.DonationService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Donation deleted"})
}

func (ctrl *DonationController) GetTotalDonations(c *fiber.Ctx) error {
	stats, err := ctrl.DonationService.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":        true,
		"totalAmount":    stats.TotalAmount,
		"thirtyDayStats": stats.ThirtyDayStats,
		"sixtyDayStats":  stats.SixtyDayStats,
	})
}

func (ctrl *DonationController) GetDonationsByCause(c *fiber.Ctx) error {
	rows, err := ctrl.DonationService.ByCause(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": rows})
}

func (ctrl *DonationController) ExportDonations(c *fiber.Ctx) error {
	data, err := ctrl.DonationService.Export(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="donations.xlsx"`)
	return c.Send(data)
}
