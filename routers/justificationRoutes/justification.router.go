package justificationRoutes

import (
	controller "campus/controllers/justification"
	"campus/middleware"
	validator "campus/validators/justification"

	"github.com/gofiber/fiber/v2"
)

func SetupJustificationRoutes(app *fiber.App) {
	justifications := app.Group("/justifications")

	justifications.Post("/submit", validator.Submit(), middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), controller.SubmitJustification)
	justifications.Post("/auto", middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), controller.UploadCertificate)
	justifications.Get("/my", validator.List(), middleware.JWTMiddleware, controller.MyJustifications)
	justifications.Get("/pending", validator.List(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controller.PendingJustifications)
	justifications.Post("/review", validator.Review(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controller.ReviewJustification)
}
