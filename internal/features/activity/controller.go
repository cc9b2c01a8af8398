package activity

import (
	"github.com/gofiber/fiber/v2"
)

type ActivityController struct {
	ActivityService ActivityService
}

func NewActivityController(activityService ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

func (ctrl *ActivityController) GetRecentActivities(c *fiber.Ctx) error {
	activities, err := ctrl.ActivityService.Recent(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": activities})
}
