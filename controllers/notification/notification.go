package notificationControllers

import (
	"campus/database"
	"campus/middleware"
	"campus/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MyNotifications lists the authenticated user's notifications, newest first.
func MyNotifications(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	unreadOnly := c.Query("unread") == "true"

	db := database.Database.Db.Model(&models.Notification{}).Where("user_id = ?", userId)
	if unreadOnly {
		db = db.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := db.Order("created_at DESC").Limit(50).Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	var unreadCount int64
	database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userId, false).Count(&unreadCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": notifications,
		"unreadCount":   unreadCount,
	})
}

// MarkNotificationRead flags one of the user's notifications as read.
func MarkNotificationRead(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationId, err := strconv.Atoi(c.Params("id"))
	if err != nil || notificationId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification ID!", nil)
	}

	result := database.Database.Db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationId, userId).
		Update("is_read", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", nil)
}
