package academicControllers

import (
	"campus/database"
	"campus/middleware"
	"campus/models"

	"github.com/gofiber/fiber/v2"
)

// ListModules returns the active teaching modules.
func ListModules(c *fiber.Ctx) error {
	var modules []models.Module
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("code ASC").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// ListStudents returns the active student accounts. Admin only.
func ListStudents(c *fiber.Ctx) error {
	var students []models.User
	if err := database.Database.Db.
		Where("role = ? AND is_deleted = false", "STUDENT").
		Order("last_name ASC").Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}
