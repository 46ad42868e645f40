package services

import (
	"campus/config"
	"campus/database"
	"campus/models"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// InitializeSchedulers starts the background jobs: a daily reminder for
// justifications that sat in review too long and a weekly digest of students
// at elimination risk.
func InitializeSchedulers() {
	c := cron.New()

	// Every day at 8 AM
	c.AddFunc("0 8 * * *", func() {
		logrus.Info("[SCHEDULER] Running daily pending justification check...")
		RemindPendingJustifications()
	})

	// Every Monday at 7 AM
	c.AddFunc("0 7 * * 1", func() {
		logrus.Info("[SCHEDULER] Running weekly absence risk digest...")
		SendRiskDigest()
	})

	c.Start()
	logrus.Info("[SCHEDULER] Schedulers started")
}

// RemindPendingJustifications nudges the admins when justifications have been
// waiting for review for more than 48 hours.
func RemindPendingJustifications() {
	cutoff := time.Now().Add(-48 * time.Hour)

	var count int64
	err := database.Database.Db.Model(&models.Justification{}).
		Where("status = ? AND created_at < ?", models.JustificationPending, cutoff).
		Count(&count).Error
	if err != nil {
		logrus.WithError(err).Error("[SCHEDULER] Failed to count stale pending justifications")
		return
	}
	if count == 0 {
		return
	}

	var admins []models.User
	if err := database.Database.Db.
		Where("role = ? AND is_deleted = false", "ADMIN").
		Find(&admins).Error; err != nil {
		logrus.WithError(err).Error("[SCHEDULER] Failed to load admins for reminder")
		return
	}

	day := time.Now().Format("2006-01-02")
	link := "/justifications/pending"
	for _, admin := range admins {
		key := fmt.Sprintf("pending-reminder:%d:%s", admin.ID, day)
		CreateNotification(NotificationInput{
			UserID:   admin.ID,
			Title:    "Justifications awaiting review",
			Message:  fmt.Sprintf("%d justification(s) have been pending review for more than 48 hours.", count),
			Type:     models.NotificationWarning,
			Link:     &link,
			DedupKey: &key,
		})
	}

	logrus.WithField("count", count).Info("[SCHEDULER] Sent pending justification reminders")
}

// SendRiskDigest informs the admins which students sit at or above the
// elimination threshold.
func SendRiskDigest() {
	type riskRow struct {
		StudentID uint
		Total     int64
	}

	var rows []riskRow
	err := database.Database.Db.Model(&models.Absence{}).
		Select("student_id, COUNT(*) as total").
		Where("justified = ?", false).
		Group("student_id").
		Having("COUNT(*) >= ?", config.AppConfig.EliminationThreshold).
		Scan(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("[SCHEDULER] Failed to compute risk digest")
		return
	}
	if len(rows) == 0 {
		return
	}

	year, weekNo := time.Now().ISOWeek()
	message := fmt.Sprintf("%d student(s) are at or above the elimination threshold this week.", len(rows))

	var admins []models.User
	if err := database.Database.Db.
		Where("role = ? AND is_deleted = false", "ADMIN").
		Find(&admins).Error; err != nil {
		logrus.WithError(err).Error("[SCHEDULER] Failed to load admins for digest")
		return
	}

	for _, admin := range admins {
		key := fmt.Sprintf("risk-digest:%d:%d-W%d", admin.ID, year, weekNo)
		CreateNotification(NotificationInput{
			UserID:   admin.ID,
			Title:    "Weekly absence risk digest",
			Message:  message,
			Type:     models.NotificationInfo,
			DedupKey: &key,
		})
	}

	logrus.WithField("students", len(rows)).Info("[SCHEDULER] Sent weekly risk digest")
}
