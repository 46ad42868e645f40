package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DocumentRequestPending  = "PENDING"
	DocumentRequestReady    = "READY"
	DocumentRequestRejected = "REJECTED"
)

// DocumentRequest is a student's request for an administrative document
// (enrollment certificate, transcript, grade report).
type DocumentRequest struct {
	gorm.Model
	StudentID uint   `gorm:"not null;index"`
	Type      string `gorm:"not null"` // ENROLLMENT_CERTIFICATE, TRANSCRIPT, GRADE_REPORT
	Comment   string `gorm:"default:''"`
	Status    string `gorm:"default:'PENDING';index"`
	FileURL   *string
	HandledBy *uint
	HandledAt *time.Time

	Student *User `gorm:"foreignKey:StudentID"`
}
