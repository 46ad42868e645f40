package main

import (
	"campus/config"
	"campus/database"
	absenceRoutes "campus/routers/absenceRoutes"
	academicRoutes "campus/routers/academicRoutes"
	documentRoutes "campus/routers/documentRoutes"
	justificationRoutes "campus/routers/justificationRoutes"
	notificationRoutes "campus/routers/notificationRoutes"
	"campus/services"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve stored artifacts (justification documents, produced documents)
	app.Static("/uploads", config.AppConfig.UploadDir)

	absenceRoutes.SetupAbsenceRoutes(app)
	justificationRoutes.SetupJustificationRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	documentRoutes.SetupDocumentRoutes(app)
	academicRoutes.SetupAcademicRoutes(app)

	services.InitializeSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
