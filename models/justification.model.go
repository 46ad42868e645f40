package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	JustificationPending  = "PENDING"
	JustificationAccepted = "ACCEPTED"
	JustificationRejected = "REJECTED"
)

const (
	JustificationSourceManual = "MANUAL"
	JustificationSourceAuto   = "AUTO"
)

// Justification is a student's claim that a specific absence is excused.
// PENDING is the only non-terminal state; ACCEPTED and REJECTED are final.
//
// ActiveAbsenceRef mirrors AbsenceID while the justification is active
// (pending or accepted) and is cleared on rejection. Its unique index is what
// enforces "at most one active justification per absence" as a single
// conditional insert instead of a racy existence check.
type Justification struct {
	gorm.Model
	AbsenceID        uint  `gorm:"not null;index"`
	ActiveAbsenceRef *uint `gorm:"uniqueIndex"`
	StudentID        uint  `gorm:"not null;index"`
	Reason        string  `gorm:"type:text;not null"`
	DocumentURL   *string // stored artifact reference, optional
	Status        string  `gorm:"default:'PENDING';index"`
	Source        string  `gorm:"default:'MANUAL'"` // MANUAL or AUTO
	ReviewedBy    *uint
	ReviewComment *string
	ReviewedAt    *time.Time

	Absence *Absence `gorm:"foreignKey:AbsenceID"`
	Student *User    `gorm:"foreignKey:StudentID"`
}
