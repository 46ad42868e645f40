package services

import (
	"campus/models"
	"campus/scorer"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legitimateText = `Université de Paris - Attestation de présence médicale.
Je soussigné, Docteur Martin, certifie que l'étudiant Ahmed Benali,
numéro de dossier 20231548, a été examiné dans notre établissement.
Date: 01/02/2024. Le présent document est délivré pour servir et
valoir ce que de droit. Signature du directeur, cachet de l'administration.`

const fraudulentText = `Attestation copie. Signature du médecin. Signature du directeur.
Document modifié après délivrance. Date: 01/02/2024. Date: 03/02/2024.`

// stubExtractor replaces the external text-extraction collaborator.
func stubExtractor(t *testing.T, text string, err error) {
	t.Helper()
	original := extractText
	extractText = func(string) (string, error) { return text, err }
	t.Cleanup(func() { extractText = original })
}

func TestAutoProcessLinksPendingJustification(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	admin := createAdmin(t, db, "admin@campus.test")
	module := createModule(t, db, "MATH-201")
	createAbsence(t, student.ID, module.ID, 0)
	latest := createAbsence(t, student.ID, module.ID, 1)

	stubExtractor(t, legitimateText, nil)

	result, err := AutoProcessCertificate(AutoProcessInput{
		StudentID: student.ID,
		FilePath:  "/tmp/does-not-matter.pdf",
		FileURL:   "/uploads/cert.pdf",
		FileName:  "cert.pdf",
	})
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Equal(t, scorer.StatusLegitimate, result.Assessment.Status)
	require.NotNil(t, result.Justification)

	// Linked to the most recent unjustified absence, pending, auto-sourced.
	assert.Equal(t, latest.ID, result.Justification.AbsenceID)
	assert.Equal(t, models.JustificationPending, result.Justification.Status)
	assert.Equal(t, models.JustificationSourceAuto, result.Justification.Source)

	// The scorer's verdict is captured in the audit reason.
	assert.True(t, strings.Contains(result.Justification.Reason, scorer.StatusLegitimate))
	assert.True(t, strings.Contains(result.Justification.Reason, scorer.ConfidenceHigh))

	// The absence stays unjustified until a human accepts.
	var absence models.Absence
	require.NoError(t, db.First(&absence, latest.ID).Error)
	assert.False(t, absence.Justified)

	// Admins were told a document needs review.
	infos := notificationsFor(t, db, admin.ID, models.NotificationInfo)
	require.Len(t, infos, 1)
	require.NotNil(t, infos[0].Link)

	// Exactly one justification was created.
	var count int64
	db.Model(&models.Justification{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAutoProcessRejectsFraudulentCertificate(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	admin := createAdmin(t, db, "admin@campus.test")
	module := createModule(t, db, "MATH-201")
	createAbsence(t, student.ID, module.ID, 0)

	stubExtractor(t, fraudulentText, nil)

	result, err := AutoProcessCertificate(AutoProcessInput{
		StudentID: student.ID,
		FilePath:  "/tmp/does-not-matter.pdf",
		FileURL:   "/uploads/cert.pdf",
		FileName:  "cert.pdf",
	})
	require.NoError(t, err)

	assert.False(t, result.Accepted)
	assert.GreaterOrEqual(t, result.Assessment.FraudCount(), 1)
	assert.Nil(t, result.Justification)

	// Nothing was created and nobody was notified.
	var count int64
	db.Model(&models.Justification{}).Count(&count)
	assert.Zero(t, count)

	var notifications int64
	db.Model(&models.Notification{}).Where("user_id = ?", admin.ID).Count(&notifications)
	assert.Zero(t, notifications)
}

func TestAutoProcessWithoutUnjustifiedAbsence(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	admin := createAdmin(t, db, "admin@campus.test")

	stubExtractor(t, legitimateText, nil)

	result, err := AutoProcessCertificate(AutoProcessInput{
		StudentID: student.ID,
		FilePath:  "/tmp/does-not-matter.pdf",
		FileURL:   "/uploads/cert.pdf",
		FileName:  "cert.pdf",
	})
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Nil(t, result.Justification)
	assert.NotEmpty(t, result.Warning)

	// Admins still get a heads-up even with nothing to link.
	warnings := notificationsFor(t, db, admin.ID, models.NotificationWarning)
	assert.Len(t, warnings, 1)
}

func TestAutoProcessExtractionFailure(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")
	createAbsence(t, student.ID, module.ID, 0)

	stubExtractor(t, "", errors.New("extractor unreachable"))

	_, err := AutoProcessCertificate(AutoProcessInput{
		StudentID: student.ID,
		FilePath:  "/tmp/does-not-matter.pdf",
		FileURL:   "/uploads/cert.pdf",
		FileName:  "cert.pdf",
	})
	assert.ErrorIs(t, err, ErrCouldNotAnalyze)

	var count int64
	db.Model(&models.Justification{}).Count(&count)
	assert.Zero(t, count)
}

func TestAutoProcessRefusesSecondCertificateWhilePending(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	createAdmin(t, db, "admin@campus.test")
	module := createModule(t, db, "MATH-201")
	createAbsence(t, student.ID, module.ID, 0)

	stubExtractor(t, legitimateText, nil)

	input := AutoProcessInput{
		StudentID: student.ID,
		FilePath:  "/tmp/does-not-matter.pdf",
		FileURL:   "/uploads/cert.pdf",
		FileName:  "cert.pdf",
	}

	_, err := AutoProcessCertificate(input)
	require.NoError(t, err)

	_, err = AutoProcessCertificate(input)
	assert.ErrorIs(t, err, ErrJustificationPending)

	var count int64
	db.Model(&models.Justification{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
