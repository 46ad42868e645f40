package services

import "errors"

// Named failure conditions for the absence/justification core. Controllers
// translate these into user-facing responses; nothing here is retried.
var (
	// ErrDuplicateAbsence: an absence for the same (student, module, date)
	// already exists.
	ErrDuplicateAbsence = errors.New("absence already recorded for this student, module and date")

	// ErrAbsenceNotFound: the referenced absence does not exist.
	ErrAbsenceNotFound = errors.New("absence not found")

	// ErrNotOwner: the absence does not belong to the submitting student.
	ErrNotOwner = errors.New("absence does not belong to this student")

	// ErrAlreadyResolved: the absence is already justified.
	ErrAlreadyResolved = errors.New("absence is already justified")

	// ErrJustificationPending: the absence already carries a pending
	// justification; a second submission is refused, not superseded.
	ErrJustificationPending = errors.New("a justification is already pending for this absence")

	// ErrAlreadyReviewed: the justification left the pending state earlier.
	ErrAlreadyReviewed = errors.New("justification has already been reviewed")

	// ErrJustificationNotFound: the referenced justification does not exist.
	ErrJustificationNotFound = errors.New("justification not found")

	// ErrCouldNotAnalyze: the text-extraction collaborator failed; the
	// document was not linked to anything.
	ErrCouldNotAnalyze = errors.New("document could not be analyzed")
)
