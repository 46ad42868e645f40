package academicRoutes

import (
	controller "campus/controllers/academic"
	"campus/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAcademicRoutes(app *fiber.App) {
	academic := app.Group("/academic")

	academic.Get("/modules", middleware.JWTMiddleware, controller.ListModules)
	academic.Get("/students", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controller.ListStudents)
}
