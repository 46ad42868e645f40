package services

import (
	"campus/database"
	"campus/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"
)

// NotificationInput describes one advisory to store for a user. DedupKey, when
// set, makes the insert conditional: a notification with the same key is only
// ever stored once, enforced by the unique index rather than a read-then-write.
type NotificationInput struct {
	UserID   uint
	Title    string
	Message  string
	Type     string // warning, error, success, info
	Link     *string
	DedupKey *string
}

// CreateNotification stores an advisory and reports whether a new row was
// actually created (false when the dedup key already existed). Delivery is
// best-effort: a storage failure is logged, never propagated to the caller's
// main flow.
func CreateNotification(input NotificationInput) bool {
	notification := models.Notification{
		UserID:   input.UserID,
		Title:    input.Title,
		Message:  input.Message,
		Type:     input.Type,
		Link:     input.Link,
		DedupKey: input.DedupKey,
	}

	result := database.Database.Db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&notification)

	if result.Error != nil {
		logrus.WithError(result.Error).
			WithField("userId", input.UserID).
			Error("failed to store notification")
		return false
	}

	return result.RowsAffected > 0
}

// NotifyAdmins fans one advisory out to every active admin account.
func NotifyAdmins(title, message, notifType string, link *string) {
	var admins []models.User
	err := database.Database.Db.
		Where("role = ? AND is_deleted = false", "ADMIN").
		Find(&admins).Error
	if err != nil {
		logrus.WithError(err).Error("failed to load admin accounts for notification")
		return
	}

	for _, admin := range admins {
		CreateNotification(NotificationInput{
			UserID:  admin.ID,
			Title:   title,
			Message: message,
			Type:    notifType,
			Link:    link,
		})
	}
}
