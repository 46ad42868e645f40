package services

import (
	"campus/config"
	"campus/database"
	"campus/models"
	"campus/utils"
	"fmt"

	"github.com/sirupsen/logrus"
)

// EvaluateAbsenceRisk recomputes a student's unjustified-absence count and
// issues risk advisories at the configured breakpoints: a warning exactly at
// WARNING_THRESHOLD, an error advisory at every count at or above
// ELIMINATION_THRESHOLD. It reads and notifies only; absence and
// justification state are never touched here.
//
// Dedup keys make the step idempotent: re-running it without a new absence
// creates nothing, and a count that was already notified once (even if the
// student later dropped below it and climbed back) stays notified.
func EvaluateAbsenceRisk(studentID uint) error {
	count, err := UnjustifiedCount(studentID)
	if err != nil {
		return err
	}

	warning := int64(config.AppConfig.WarningThreshold)
	elimination := int64(config.AppConfig.EliminationThreshold)

	if count == warning {
		key := fmt.Sprintf("risk:%d:warning:%d", studentID, count)
		created := CreateNotification(NotificationInput{
			UserID: studentID,
			Title:  "Absence warning",
			Message: fmt.Sprintf(
				"You have reached %d unjustified absences. Please submit justifications before the situation escalates.",
				count),
			Type:     models.NotificationWarning,
			DedupKey: &key,
		})
		if created {
			logrus.WithFields(logrus.Fields{"studentId": studentID, "count": count}).
				Warn("student crossed absence warning threshold")
		}
	}

	if count >= elimination {
		key := fmt.Sprintf("risk:%d:elimination:%d", studentID, count)
		created := CreateNotification(NotificationInput{
			UserID: studentID,
			Title:  "Elimination risk",
			Message: fmt.Sprintf(
				"You have %d unjustified absences and are at risk of elimination from your modules. Contact the administration immediately.",
				count),
			Type:     models.NotificationError,
			DedupKey: &key,
		})
		if created {
			logrus.WithFields(logrus.Fields{"studentId": studentID, "count": count}).
				Warn("student at or above elimination threshold")

			var student models.User
			if err := database.Database.Db.First(&student, studentID).Error; err == nil {
				utils.SendEliminationRiskEmail(student.Email, student.FirstName, int(count))
			}
		}
	}

	return nil
}
