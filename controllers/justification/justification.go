package justificationControllers

import (
	"campus/config"
	"campus/database"
	"campus/middleware"
	"campus/models"
	"campus/services"
	"campus/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	justificationValidators "campus/validators/justification"
)

// SubmitJustification handles the manual flow: a student claims one of their
// absences is excused, optionally attaching a supporting document.
func SubmitJustification(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmit").(*justificationValidators.SubmitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var documentURL *string
	if file, err := c.FormFile("document"); err == nil && file != nil {
		storedPath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store document!", nil)
		}
		url := utils.GetFileURL(storedPath)
		documentURL = &url
	}

	justification, err := services.SubmitJustification(services.SubmitJustificationInput{
		StudentID:   userId,
		AbsenceID:   reqData.AbsenceID,
		Reason:      reqData.Reason,
		DocumentURL: documentURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAbsenceNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Absence not found!", nil)
		case errors.Is(err, services.ErrNotOwner):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This absence does not belong to you!", nil)
		case errors.Is(err, services.ErrAlreadyResolved):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "This absence is already justified!", nil)
		case errors.Is(err, services.ErrJustificationPending):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A justification is already pending for this absence!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit justification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Justification submitted successfully!", justification)
}

// MyJustifications lists the authenticated student's justifications.
func MyJustifications(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedJustificationList").(*justificationValidators.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	page, limit := paginate(reqData.Page, reqData.Limit)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Justification{}).Where("student_id = ?", userId)
	if reqData.Status != nil {
		db = db.Where("status = ?", strings.ToUpper(*reqData.Status))
	}

	var total int64
	db.Count(&total)

	var justifications []models.Justification
	if err := db.Preload("Absence").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&justifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch justifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Justifications fetched successfully!", fiber.Map{
		"justifications": justifications,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// PendingJustifications is the admin review queue, oldest first.
func PendingJustifications(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedJustificationList").(*justificationValidators.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	page, limit := paginate(reqData.Page, reqData.Limit)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Justification{}).
		Where("status = ?", models.JustificationPending)

	var total int64
	db.Count(&total)

	var justifications []models.Justification
	if err := db.Preload("Absence").Preload("Student").Order("created_at ASC").
		Offset(offset).Limit(limit).Find(&justifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch justifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending justifications fetched successfully!", fiber.Map{
		"justifications": justifications,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// ReviewJustification finalizes a pending justification. Admin only.
func ReviewJustification(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*justificationValidators.ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	justification, err := services.ReviewJustification(services.ReviewInput{
		JustificationID: reqData.JustificationID,
		ReviewerID:      userId,
		Decision:        reqData.Decision,
		Comment:         reqData.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJustificationNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Justification not found!", nil)
		case errors.Is(err, services.ErrAlreadyReviewed):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Justification has already been reviewed!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review justification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Justification reviewed successfully!", justification)
}

func paginate(pagePtr, limitPtr *int) (int, int) {
	page := 1
	limit := 10
	if pagePtr != nil {
		page = *pagePtr
	}
	if limitPtr != nil {
		limit = *limitPtr
	}
	return page, limit
}
