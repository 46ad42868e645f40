package absenceRoutes

import (
	controller "campus/controllers/absence"
	"campus/middleware"
	validator "campus/validators/absence"

	"github.com/gofiber/fiber/v2"
)

func SetupAbsenceRoutes(app *fiber.App) {
	absences := app.Group("/absences")

	absences.Post("/record", validator.RecordAbsence(), middleware.JWTMiddleware, middleware.RequireRole("TEACHER", "ADMIN"), controller.RecordAbsence)
	absences.Get("/my", validator.AbsenceList(), middleware.JWTMiddleware, controller.MyAbsences)
	absences.Get("/admin-list", validator.AbsenceList(), middleware.JWTMiddleware, middleware.RequireRole("TEACHER", "ADMIN"), controller.AdminAbsenceList)
}
