package user

import (
	"go-ngo/internal/common/apperr"
	"go-ngo/internal/common/validation"
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{UserService: userService}
}

type CreateUserRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"omitempty"`
	AccountType string `json:"accountType" validate:"required,oneof=individual organization"`
}

type UpdateUserRequest struct {
	Name            string    `json:"name" validate:"omitempty,min=3,max=50"`
	Email           string    `json:"email" validate:"omitempty,email"`
	Role            string    `json:"role" validate:"omitempty"`
	Status          string    `json:"status" validate:"omitempty,oneof=active inactive"`
	Level           int       `json:"level" validate:"omitempty,gte=1,lte=12"`
	Geo             *rbac.Geo `json:"geo"`
	AssignedRegions []string  `json:"assignedRegions"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

type RoleChangeRequest struct {
	Role string `json:"role" validate:"required"`
}

type DesignationRequest struct {
	Designation string `json:"designation" validate:"required"`
}

type PermissionsRequest struct {
	Permissions rbac.Matrix `json:"permissions" validate:"required"`
}

func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := ctrl.UserService.List(c.Context(), c.Query("accountType"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": users})
}

func (ctrl *UserController) ListUsersByRegion(c *fiber.Ctx) error {
	users, err := ctrl.UserService.ListByRegion(c.Context(), c.Params("regionId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": users})
}

func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	user, err := ctrl.UserService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	user := &User{
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		AccountType: req.AccountType,
	}
	if err := ctrl.UserService.Create(c.Context(), user, req.Password); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": user})
}

// UpdateUser handles the admin/self profile update. The self-or-admin
// check lives in the route chain.
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
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
	if req.Role != "" {
		set["role"] = req.Role
	}
	if req.Status != "" {
		set["status"] = req.Status
	}
	if req.Level != 0 {
		set["level"] = req.Level
	}
	if req.Geo != nil {
		set["geo"] = req.Geo
	}
	if req.AssignedRegions != nil {
		set["assigned_regions"] = req.AssignedRegions
	}
	if len(set) == 0 {
		return apperr.BadRequest("Nothing to update")
	}

	user, err := ctrl.UserService.Update(c.Context(), c.Params("id"), set)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	if err := ctrl.UserService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}

func (ctrl *UserController) UpdateStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	user, err := ctrl.UserService.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

func (ctrl *UserController) UpdateRole(c *fiber.Ctx) error {
	var req RoleChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	user, err := ctrl.UserService.UpdateRole(c.Context(), c.Params("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

func (ctrl *UserController) UpdateDesignation(c *fiber.Ctx) error {
	var req DesignationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	user, err := ctrl.UserService.UpdateDesignation(c.Context(), c.Params("id"), req.Designation)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

func (ctrl *UserController) GetPermissions(c *fiber.Ctx) error {
	perms, roleName, err := ctrl.UserService.GetPermissions(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "permissions": perms, "role": roleName})
}

func (ctrl *UserController) UpdatePermissions(c *fiber.Ctx) error {
	var req PermissionsRequest
	if err := c.BodyParser(&req); err != nil || req.Permissions == nil {
		return apperr.BadRequest("Invalid permissions format")
	}

	user, err := ctrl.UserService.UpdatePermissions(c.Context(), c.Params("id"), req.Permissions)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"permissions": user.Permissions, "role": user.Role},
	})
}

// RequireSelfOrAdmin limits an endpoint to the account owner or the
// super admin.
func RequireSelfOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.PrincipalFrom(c)
		if !ok {
			return apperr.Unauthenticated("Not authenticated")
		}
		if principal.ID.Hex() == c.Params("id") || principal.Role == rbac.RoleAdmin {
			return c.Next()
		}
		return apperr.Forbidden("Not authorized to update this user")
	}
}
