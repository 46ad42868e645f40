package services

import (
	"campus/database"
	"campus/models"
	"campus/scorer"
	"campus/utils"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AutoProcessInput describes a self-submitted certificate upload.
type AutoProcessInput struct {
	StudentID uint
	FilePath  string // stored artifact on disk
	FileURL   string // public reference kept on the justification
	FileName  string // original upload name
}

// AutoProcessResult is what the caller (student-facing endpoint) gets back.
// When Accepted is false the assessment explains the refusal and nothing was
// created; the student can resubmit or use the manual flow.
type AutoProcessResult struct {
	Accepted      bool                  `json:"accepted"`
	Assessment    scorer.Assessment     `json:"assessment"`
	Justification *models.Justification `json:"justification,omitempty"`
	Warning       string                `json:"warning,omitempty"`
}

// extractText calls the external text-extraction collaborator. Kept as a
// package variable so tests can stand in for the HTTP service.
var extractText = utils.ExtractText

// AutoProcessCertificate runs the automated certificate path: extract text,
// score it, and when the scorer is confident enough, pre-fill a pending
// justification against the student's most recent unjustified absence and
// alert the admins. The justification still goes through human review; the
// scorer never accepts anything on its own.
func AutoProcessCertificate(input AutoProcessInput) (*AutoProcessResult, error) {
	text, err := extractText(input.FilePath)
	if err != nil {
		utils.DiscardArtifact(input.FilePath)
		return nil, fmt.Errorf("%w: %v", ErrCouldNotAnalyze, err)
	}

	assessment := scorer.Score(text, input.FileName)
	result := &AutoProcessResult{Assessment: assessment}

	if !autoAcceptable(assessment) {
		// Scorer said no: discard the artifact, hand the evidence back, and
		// leave the store untouched. Nobody gets notified.
		utils.DiscardArtifact(input.FilePath)
		logrus.WithFields(logrus.Fields{
			"studentId": input.StudentID,
			"status":    assessment.Status,
			"fileName":  input.FileName,
		}).Info("certificate rejected by scorer")
		return result, nil
	}

	result.Accepted = true

	var absence models.Absence
	err = database.Database.Db.
		Where("student_id = ? AND justified = ?", input.StudentID, false).
		Order("date DESC").
		First(&absence).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Plausible certificate but nothing to attach it to. Surface a
			// warning instead of failing and let the admins take a look.
			result.Warning = "no unjustified absence found to link the certificate to"
			NotifyAdmins(
				"Certificate received without matching absence",
				fmt.Sprintf("Student %d uploaded a certificate scored %s (%s confidence) but has no unjustified absence on record.",
					input.StudentID, assessment.Status, assessment.Confidence),
				models.NotificationWarning,
				nil,
			)
			return result, nil
		}
		return nil, err
	}

	documentURL := input.FileURL
	justification, attach, err := attachJustification(&absence, SubmitJustificationInput{
		StudentID:   input.StudentID,
		AbsenceID:   absence.ID,
		Reason:      auditReason(assessment),
		DocumentURL: &documentURL,
		Source:      models.JustificationSourceAuto,
	})
	if err != nil {
		return nil, err
	}
	switch attach {
	case AttachAbsenceResolved:
		return nil, ErrAlreadyResolved
	case AttachAlreadyPending:
		// A justification for this absence is already awaiting review; the
		// new certificate is refused rather than superseding it.
		utils.DiscardArtifact(input.FilePath)
		return nil, ErrJustificationPending
	}

	result.Justification = justification

	link := fmt.Sprintf("/justifications/%d", justification.ID)
	NotifyAdmins(
		"Auto-submitted justification needs review",
		fmt.Sprintf("A certificate scored %s (%s confidence) was auto-submitted for student %d and awaits review.",
			assessment.Status, assessment.Confidence, input.StudentID),
		models.NotificationInfo,
		&link,
	)

	return result, nil
}

// autoAcceptable decides whether a scored certificate may enter the pipeline.
// The needs_review branch is deliberately permissive so borderline but
// plausible certificates still reach a human instead of being discarded.
func autoAcceptable(assessment scorer.Assessment) bool {
	if assessment.Status == scorer.StatusLegitimate {
		return true
	}
	return assessment.Status == scorer.StatusNeedsReview && assessment.Confidence == scorer.ConfidenceMedium
}

// auditReason records why the document was auto-submitted so the reviewing
// admin can see the scorer's verdict in the justification itself.
func auditReason(assessment scorer.Assessment) string {
	reason := fmt.Sprintf("Auto-submitted certificate (scorer status: %s, confidence: %s)",
		assessment.Status, assessment.Confidence)
	if len(assessment.PositiveSignals) > 0 {
		reason += ". Signals: " + strings.Join(assessment.PositiveSignals, "; ")
	}
	return reason
}
