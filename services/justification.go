package services

import (
	"campus/database"
	"campus/models"
	"campus/utils"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AttachResult is the outcome of the conditional "attach a justification to
// an absence" write.
type AttachResult int

const (
	Attached AttachResult = iota
	AttachAbsenceResolved
	AttachAlreadyPending
)

// SubmitJustificationInput carries a validated manual submission.
type SubmitJustificationInput struct {
	StudentID   uint
	AbsenceID   uint
	Reason      string
	DocumentURL *string
	Source      string // MANUAL or AUTO
}

// Validate rejects structurally invalid input before any store access.
func (input SubmitJustificationInput) Validate() error {
	if input.StudentID == 0 || input.AbsenceID == 0 {
		return errors.New("studentId and absenceId are required")
	}
	if input.Reason == "" {
		return errors.New("reason is required")
	}
	return nil
}

// SubmitJustification creates a pending justification for one of the
// student's own unjustified absences. At most one active justification may
// exist per absence; a second attempt is refused, never duplicated.
func SubmitJustification(input SubmitJustificationInput) (*models.Justification, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Source == "" {
		input.Source = models.JustificationSourceManual
	}

	var absence models.Absence
	if err := database.Database.Db.First(&absence, input.AbsenceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAbsenceNotFound
		}
		return nil, err
	}

	if absence.StudentID != input.StudentID {
		return nil, ErrNotOwner
	}

	justification, result, err := attachJustification(&absence, input)
	if err != nil {
		return nil, err
	}

	switch result {
	case AttachAbsenceResolved:
		return nil, ErrAlreadyResolved
	case AttachAlreadyPending:
		return nil, ErrJustificationPending
	}

	return justification, nil
}

// attachJustification performs the single conditional write that binds a new
// pending justification to an absence. The unique index on ActiveAbsenceRef
// is the compare-and-swap: if another active justification already holds the
// slot, the insert fails cleanly instead of duplicating.
func attachJustification(absence *models.Absence, input SubmitJustificationInput) (*models.Justification, AttachResult, error) {
	if absence.Justified {
		return nil, AttachAbsenceResolved, nil
	}

	absenceRef := absence.ID
	justification := models.Justification{
		AbsenceID:        absence.ID,
		ActiveAbsenceRef: &absenceRef,
		StudentID:        input.StudentID,
		Reason:           input.Reason,
		DocumentURL:      input.DocumentURL,
		Status:           models.JustificationPending,
		Source:           input.Source,
	}

	if err := database.Database.Db.Create(&justification).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, AttachAlreadyPending, nil
		}
		return nil, Attached, err
	}

	return &justification, Attached, nil
}

// ReviewInput carries a validated review decision.
type ReviewInput struct {
	JustificationID uint
	ReviewerID      uint
	Decision        string // ACCEPTED or REJECTED
	Comment         *string
}

// Validate rejects structurally invalid input before any store access.
func (input ReviewInput) Validate() error {
	if input.JustificationID == 0 || input.ReviewerID == 0 {
		return errors.New("justificationId and reviewerId are required")
	}
	if input.Decision != models.JustificationAccepted && input.Decision != models.JustificationRejected {
		return errors.New("decision must be ACCEPTED or REJECTED")
	}
	return nil
}

// ReviewJustification finalizes a pending justification. Acceptance flips the
// absence to justified; rejection frees the absence for a new submission.
// Both outcomes are terminal. The state transition is a conditional update on
// the pending status, so two concurrent reviews cannot both win.
func ReviewJustification(input ReviewInput) (*models.Justification, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var justification models.Justification
	if err := database.Database.Db.First(&justification, input.JustificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJustificationNotFound
		}
		return nil, err
	}

	reviewedAt := time.Now()
	updates := map[string]interface{}{
		"status":         input.Decision,
		"reviewed_by":    input.ReviewerID,
		"review_comment": input.Comment,
		"reviewed_at":    reviewedAt,
	}
	if input.Decision == models.JustificationRejected {
		// Release the active slot so the student can submit again.
		updates["active_absence_ref"] = nil
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Justification{}).
			Where("id = ? AND status = ?", input.JustificationID, models.JustificationPending).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyReviewed
		}

		if input.Decision == models.JustificationAccepted {
			if err := tx.Model(&models.Absence{}).
				Where("id = ?", justification.AbsenceID).
				Update("justified", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyReviewOutcome(&justification, input)

	if err := database.Database.Db.First(&justification, input.JustificationID).Error; err != nil {
		return nil, err
	}
	return &justification, nil
}

// notifyReviewOutcome tells the student how the review went. Advisory only:
// failures are logged and swallowed, the committed review stands regardless.
func notifyReviewOutcome(justification *models.Justification, input ReviewInput) {
	if input.Decision == models.JustificationAccepted {
		CreateNotification(NotificationInput{
			UserID:  justification.StudentID,
			Title:   "Justification accepted",
			Message: "Your absence justification has been accepted. The absence is now marked as justified.",
			Type:    models.NotificationSuccess,
		})
	} else {
		message := "Your absence justification has been rejected."
		if input.Comment != nil && *input.Comment != "" {
			message += " Reviewer comment: " + *input.Comment
		}
		CreateNotification(NotificationInput{
			UserID:  justification.StudentID,
			Title:   "Justification rejected",
			Message: message,
			Type:    models.NotificationError,
		})
	}

	var student models.User
	if err := database.Database.Db.First(&student, justification.StudentID).Error; err != nil {
		logrus.WithError(err).Warn("could not load student for review outcome email")
		return
	}
	utils.SendReviewOutcomeEmail(student.Email, student.FirstName, input.Decision == models.JustificationAccepted)
}
