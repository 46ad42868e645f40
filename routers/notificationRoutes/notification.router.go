package notificationRoutes

import (
	controller "campus/controllers/notification"
	"campus/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notifications := app.Group("/notifications")

	notifications.Get("/my", middleware.JWTMiddleware, controller.MyNotifications)
	notifications.Patch("/:id/read", middleware.JWTMiddleware, controller.MarkNotificationRead)
}
