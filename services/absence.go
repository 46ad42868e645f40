package services

import (
	"campus/database"
	"campus/models"
	"errors"
	"time"

	"github.com/jinzhu/now"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecordAbsenceInput carries a validated absence recording request.
type RecordAbsenceInput struct {
	StudentID  uint
	ModuleID   uint
	Date       time.Time
	RecordedBy uint
}

// Validate rejects structurally invalid input before any store access.
func (input RecordAbsenceInput) Validate() error {
	if input.StudentID == 0 || input.ModuleID == 0 || input.RecordedBy == 0 {
		return errors.New("studentId, moduleId and recordedBy are required")
	}
	if input.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

// RecordAbsence stores one unexcused occurrence. The (student, module, date)
// triple is unique; the store's constraint is the only guard, so two
// concurrent recordings cannot both succeed. The new absence is always
// unjustified and the student's risk level is re-evaluated afterwards.
func RecordAbsence(input RecordAbsenceInput) (*models.Absence, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	absence := models.Absence{
		StudentID:  input.StudentID,
		ModuleID:   input.ModuleID,
		Date:       now.New(input.Date).BeginningOfDay(),
		Justified:  false,
		RecordedBy: input.RecordedBy,
	}

	if err := database.Database.Db.Create(&absence).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAbsence
		}
		return nil, err
	}

	if err := EvaluateAbsenceRisk(input.StudentID); err != nil {
		// Risk advisories are one-directional side effects; a failure here
		// must not roll back the recorded absence.
		logrus.WithError(err).
			WithField("studentId", input.StudentID).
			Error("risk evaluation failed after absence recording")
	}

	return &absence, nil
}

// UnjustifiedCount returns the student's current number of unjustified
// absences. This is the live figure; notifications are only advisories.
func UnjustifiedCount(studentID uint) (int64, error) {
	var count int64
	err := database.Database.Db.
		Model(&models.Absence{}).
		Where("student_id = ? AND justified = ?", studentID, false).
		Count(&count).Error
	return count, err
}
