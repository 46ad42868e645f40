package documentControllers

import (
	"campus/config"
	"campus/database"
	"campus/middleware"
	"campus/models"
	"campus/services"
	"campus/utils"
	"time"

	"github.com/gofiber/fiber/v2"

	documentValidators "campus/validators/document"
)

// CreateDocumentRequest lets a student ask for an administrative document.
func CreateDocumentRequest(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDocumentCreate").(*documentValidators.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// One open request per document type at a time
	var existing models.DocumentRequest
	err := database.Database.Db.
		Where("student_id = ? AND type = ? AND status = ?", userId, reqData.Type, models.DocumentRequestPending).
		First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already have a pending request for this document!", nil)
	}

	request := models.DocumentRequest{
		StudentID: userId,
		Type:      reqData.Type,
		Comment:   reqData.Comment,
		Status:    models.DocumentRequestPending,
	}
	if err := database.Database.Db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create document request!", nil)
	}

	services.NotifyAdmins(
		"New document request",
		"A student requested a "+reqData.Type+" document.",
		models.NotificationInfo,
		nil,
	)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Document request created successfully!", request)
}

// MyDocumentRequests lists the authenticated student's document requests.
func MyDocumentRequests(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var requests []models.DocumentRequest
	if err := database.Database.Db.
		Where("student_id = ?", userId).
		Order("created_at DESC").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch document requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document requests fetched successfully!", requests)
}

// AdminDocumentRequests lists pending document requests for the back office.
func AdminDocumentRequests(c *fiber.Ctx) error {
	var requests []models.DocumentRequest
	if err := database.Database.Db.
		Where("status = ?", models.DocumentRequestPending).
		Preload("Student").
		Order("created_at ASC").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch document requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document requests fetched successfully!", requests)
}

// FulfillDocumentRequest attaches the produced document and marks the request
// ready. Admin only.
func FulfillDocumentRequest(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDocumentHandle").(*documentValidators.HandleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	file, err := c.FormFile("document")
	if err != nil || file == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "The produced document file is required!", nil)
	}

	var request models.DocumentRequest
	if err := database.Database.Db.First(&request, reqData.RequestID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document request not found!", nil)
	}
	if request.Status != models.DocumentRequestPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Document request has already been handled!", nil)
	}

	storedPath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store document!", nil)
	}
	fileURL := utils.GetFileURL(storedPath)

	handledAt := time.Now()
	updates := map[string]interface{}{
		"status":     models.DocumentRequestReady,
		"file_url":   fileURL,
		"handled_by": userId,
		"handled_at": handledAt,
	}
	result := database.Database.Db.Model(&models.DocumentRequest{}).
		Where("id = ? AND status = ?", reqData.RequestID, models.DocumentRequestPending).
		Updates(updates)
	if result.Error != nil || result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Document request has already been handled!", nil)
	}

	services.CreateNotification(services.NotificationInput{
		UserID:  request.StudentID,
		Title:   "Document ready",
		Message: "Your requested document (" + request.Type + ") is ready for download.",
		Type:    models.NotificationSuccess,
		Link:    &fileURL,
	})

	var student models.User
	if err := database.Database.Db.First(&student, request.StudentID).Error; err == nil {
		utils.SendDocumentReadyEmail(student.Email, student.FirstName, request.Type)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document request fulfilled successfully!", nil)
}

// RejectDocumentRequest declines a request with an optional comment. Admin only.
func RejectDocumentRequest(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDocumentHandle").(*documentValidators.HandleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var request models.DocumentRequest
	if err := database.Database.Db.First(&request, reqData.RequestID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document request not found!", nil)
	}

	handledAt := time.Now()
	result := database.Database.Db.Model(&models.DocumentRequest{}).
		Where("id = ? AND status = ?", reqData.RequestID, models.DocumentRequestPending).
		Updates(map[string]interface{}{
			"status":     models.DocumentRequestRejected,
			"handled_by": userId,
			"handled_at": handledAt,
		})
	if result.Error != nil || result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Document request has already been handled!", nil)
	}

	message := "Your document request (" + request.Type + ") was rejected."
	if reqData.Comment != "" {
		message += " Comment: " + reqData.Comment
	}
	services.CreateNotification(services.NotificationInput{
		UserID:  request.StudentID,
		Title:   "Document request rejected",
		Message: message,
		Type:    models.NotificationError,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document request rejected!", nil)
}
