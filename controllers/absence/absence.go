package absenceControllers

import (
	"campus/database"
	"campus/middleware"
	"campus/models"
	"campus/services"
	"errors"

	"github.com/gofiber/fiber/v2"

	absenceValidators "campus/validators/absence"
)

// RecordAbsence logs one unexcused occurrence for a student. Teacher/admin only.
func RecordAbsence(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRecordAbsence").(*absenceValidators.RecordAbsenceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The student must exist and actually be a student
	var student models.User
	if err := database.Database.Db.
		Where("id = ? AND role = ? AND is_deleted = false", reqData.StudentID, "STUDENT").
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var module models.Module
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", reqData.ModuleID).
		First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	absence, err := services.RecordAbsence(services.RecordAbsenceInput{
		StudentID:  reqData.StudentID,
		ModuleID:   reqData.ModuleID,
		Date:       reqData.ParsedDate,
		RecordedBy: userId,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateAbsence) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Absence already recorded for this student, module and date!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record absence!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Absence recorded successfully!", absence)
}

// MyAbsences lists the authenticated student's absences with the live
// unjustified count.
func MyAbsences(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAbsenceList").(*absenceValidators.AbsenceListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	page, limit := paginate(reqData.Page, reqData.Limit)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Absence{}).Where("student_id = ?", userId)
	if reqData.ModuleID != nil {
		db = db.Where("module_id = ?", *reqData.ModuleID)
	}
	if reqData.Justified != nil {
		db = db.Where("justified = ?", *reqData.Justified)
	}

	var total int64
	db.Count(&total)

	var absences []models.Absence
	if err := db.Preload("Module").Order("date DESC").Offset(offset).Limit(limit).Find(&absences).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch absences!", nil)
	}

	unjustified, err := services.UnjustifiedCount(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch absences!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Absences fetched successfully!", fiber.Map{
		"absences":         absences,
		"unjustifiedCount": unjustified,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// AdminAbsenceList lists absences across students for teachers and admins.
func AdminAbsenceList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAbsenceList").(*absenceValidators.AbsenceListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	page, limit := paginate(reqData.Page, reqData.Limit)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Absence{})
	if reqData.StudentID != nil {
		db = db.Where("student_id = ?", *reqData.StudentID)
	}
	if reqData.ModuleID != nil {
		db = db.Where("module_id = ?", *reqData.ModuleID)
	}
	if reqData.Justified != nil {
		db = db.Where("justified = ?", *reqData.Justified)
	}

	var total int64
	db.Count(&total)

	var absences []models.Absence
	if err := db.Preload("Student").Preload("Module").
		Order("date DESC").Offset(offset).Limit(limit).Find(&absences).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch absences!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Absences fetched successfully!", fiber.Map{
		"absences": absences,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
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
