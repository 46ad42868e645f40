package services

import (
	"campus/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAbsence(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")

	absence, err := RecordAbsence(RecordAbsenceInput{
		StudentID:  student.ID,
		ModuleID:   module.ID,
		Date:       day(0),
		RecordedBy: 99,
	})
	require.NoError(t, err)

	assert.False(t, absence.Justified)
	assert.Equal(t, student.ID, absence.StudentID)
	assert.Equal(t, uint(99), absence.RecordedBy)
}

func TestRecordAbsenceRejectsDuplicate(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")

	input := RecordAbsenceInput{
		StudentID:  student.ID,
		ModuleID:   module.ID,
		Date:       day(0),
		RecordedBy: 99,
	}

	_, err := RecordAbsence(input)
	require.NoError(t, err)

	_, err = RecordAbsence(input)
	assert.ErrorIs(t, err, ErrDuplicateAbsence)

	var count int64
	db.Model(&models.Absence{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecordAbsenceNormalizesDateToDay(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")

	morning := time.Date(2024, 3, 1, 8, 15, 0, 0, time.Local)
	afternoon := time.Date(2024, 3, 1, 16, 45, 0, 0, time.Local)

	_, err := RecordAbsence(RecordAbsenceInput{
		StudentID: student.ID, ModuleID: module.ID, Date: morning, RecordedBy: 99,
	})
	require.NoError(t, err)

	// Same calendar day, different time: still the same occurrence.
	_, err = RecordAbsence(RecordAbsenceInput{
		StudentID: student.ID, ModuleID: module.ID, Date: afternoon, RecordedBy: 99,
	})
	assert.ErrorIs(t, err, ErrDuplicateAbsence)
}

func TestRecordAbsenceValidatesInput(t *testing.T) {
	setupTestDb(t)

	_, err := RecordAbsence(RecordAbsenceInput{ModuleID: 1, Date: day(0), RecordedBy: 1})
	assert.Error(t, err)

	_, err = RecordAbsence(RecordAbsenceInput{StudentID: 1, ModuleID: 1, RecordedBy: 1})
	assert.Error(t, err)
}

func TestUnjustifiedCount(t *testing.T) {
	db := setupTestDb(t)
	student := createStudent(t, db, "student@campus.test")
	module := createModule(t, db, "MATH-201")

	for i := 0; i < 2; i++ {
		_, err := RecordAbsence(RecordAbsenceInput{
			StudentID: student.ID, ModuleID: module.ID, Date: day(i), RecordedBy: 99,
		})
		require.NoError(t, err)
	}

	count, err := UnjustifiedCount(student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
