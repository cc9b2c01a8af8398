package auth

import (
	"time"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/common/validation"
	"go-ngo/internal/config"
	"go-ngo/internal/features/user"
	"go-ngo/internal/middleware"
	"go-ngo/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type AuthController struct {
	AuthService AuthService
	UserService user.UserService
	Config      *config.Config
}

func NewAuthController(authService AuthService, userService user.UserService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
		Config:      cfg,
	}
}

type RegisterRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	AccountType string `json:"accountType" validate:"omitempty,oneof=individual organization"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=3,max=50"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	usr, token, err := ctrl.AuthService.Register(c.Context(), req.Name, req.Email, req.Password, req.AccountType)
	if err != nil {
		return err
	}

	ctrl.setTokenCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "user": usr})
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	usr, token, err := ctrl.AuthService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	ctrl.setTokenCookie(c, token)
	return c.JSON(fiber.Map{"success": true, "user": usr})
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   ctrl.Config.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.JSON(fiber.Map{"success": true, "message": "Logged out successfully"})
}

func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperr.Unauthenticated("Not authenticated")
	}

	usr, err := ctrl.UserService.Get(c.Context(), principal.ID.Hex())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "user": usr})
}

func (ctrl *AuthController) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperr.Unauthenticated("Not authenticated")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if len(set) == 0 {
		return apperr.BadRequest("Nothing to update")
	}

	usr, err := ctrl.UserService.Update(c.Context(), principal.ID.Hex(), set)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "user": usr})
}

func (ctrl *AuthController) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(utils.TokenTTL / time.Second),
		HTTPOnly: true,
		Secure:   ctrl.Config.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
