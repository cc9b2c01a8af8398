package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature API so fx can collect them
// into a group and register them against the app in one pass.
type Route interface {
	Setup(app *fiber.App)
}
