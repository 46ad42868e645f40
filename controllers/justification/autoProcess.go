package justificationControllers

import (
	"campus/config"
	"campus/middleware"
	"campus/services"
	"campus/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// UploadCertificate is the automated pipeline entry point: a student uploads
// a certificate and, when the scorer is confident enough, a pending
// justification is pre-filled against their latest unjustified absence. This
// is also the endpoint the Q&A assistant routes uploads into.
func UploadCertificate(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("document")
	if err != nil || file == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A certificate file is required!", nil)
	}

	storedPath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store document!", nil)
	}

	result, err := services.AutoProcessCertificate(services.AutoProcessInput{
		StudentID: userId,
		FilePath:  storedPath,
		FileURL:   utils.GetFileURL(storedPath),
		FileName:  file.Filename,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouldNotAnalyze):
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Your document could not be analyzed. Please try again or use the manual submission.", nil)
		case errors.Is(err, services.ErrJustificationPending):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A justification is already pending for your latest absence!", nil)
		case errors.Is(err, services.ErrAlreadyResolved):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Your latest absence is already justified!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process certificate!", nil)
	}

	if !result.Accepted {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Your certificate was not accepted automatically. Please use the manual submission.", result)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate submitted for review!", result)
}
