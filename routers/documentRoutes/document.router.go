package documentRoutes

import (
	controller "campus/controllers/document"
	"campus/middleware"
	validator "campus/validators/document"

	"github.com/gofiber/fiber/v2"
)

func SetupDocumentRoutes(app *fiber.App) {
	documents := app.Group("/documents")

	documents.Post("/request", validator.Create(), middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), controller.CreateDocumentRequest)
	documents.Get("/my", middleware.JWTMiddleware, controller.MyDocumentRequests)
	documents.Get("/admin-list", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controller.AdminDocumentRequests)
	documents.Post("/fulfill", validator.Handle(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controller.FulfillDocumentRequest)
	documents.Post("/reject", validator.Handle(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controller.RejectDocumentRequest)
}
