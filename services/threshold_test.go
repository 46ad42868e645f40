package services

import (
	"campus/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordAbsences(t *testing.T, studentID, moduleID uint, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		_, err := RecordAbsence(RecordAbsenceInput{
			StudentID: studentID, ModuleID: moduleID, Date: day(i), RecordedBy: 99,
		})
		require.NoError(t, err)
	}
}

func TestWarningFiresExactlyOnceAtThreshold(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")

	// Crossing from 2 to 3 unjustified absences: exactly one warning.
	recordAbsences(t, student.ID, module.ID, 3)

	warnings := notificationsFor(t, db, student.ID, models.NotificationWarning)
	assert.Len(t, warnings, 1)

	count, err := UnjustifiedCount(student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestEliminationRiskRepeatsAboveThreshold(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")

	recordAbsences(t, student.ID, module.ID, 5)

	// One warning at 3, one risk advisory at 4 and another at 5.
	warnings := notificationsFor(t, db, student.ID, models.NotificationWarning)
	assert.Len(t, warnings, 1)

	risks := notificationsFor(t, db, student.ID, models.NotificationError)
	assert.Len(t, risks, 2)
}

func TestEvaluateIsIdempotentWithoutNewAbsences(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")

	recordAbsences(t, student.ID, module.ID, 4)

	var before int64
	db.Model(&models.Notification{}).Count(&before)

	require.NoError(t, EvaluateAbsenceRisk(student.ID))
	require.NoError(t, EvaluateAbsenceRisk(student.ID))

	var after int64
	db.Model(&models.Notification{}).Count(&after)
	assert.Equal(t, before, after)
}

func TestNoNotificationsBelowThreshold(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")

	recordAbsences(t, student.ID, module.ID, 2)

	var total int64
	db.Model(&models.Notification{}).Where("user_id = ?", student.ID).Count(&total)
	assert.Zero(t, total)
}

func TestAcceptedJustificationLowersLiveCountWithoutDeescalation(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")

	recordAbsences(t, student.ID, module.ID, 3)

	var absence models.Absence
	require.NoError(t, db.Where("student_id = ?", student.ID).Order("date ASC").First(&absence).Error)

	justification, err := SubmitJustification(SubmitJustificationInput{
		StudentID: student.ID,
		AbsenceID: absence.ID,
		Reason:    "Medical appointment, certificate attached.",
	})
	require.NoError(t, err)

	_, err = ReviewJustification(ReviewInput{
		JustificationID: justification.ID,
		ReviewerID:      1,
		Decision:        models.JustificationAccepted,
	})
	require.NoError(t, err)

	count, err := UnjustifiedCount(student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The earlier warning stays; advisories are one-directional.
	warnings := notificationsFor(t, db, student.ID, models.NotificationWarning)
	assert.Len(t, warnings, 1)
}
