package models

import (
	"time"

	"gorm.io/gorm"
)

// Absence is one recorded unexcused occurrence of a student missing a
// module session on a given date. The composite unique index is the only
// guard against two concurrent recordings of the same occurrence.
type Absence struct {
	gorm.Model
	StudentID  uint      `gorm:"not null;uniqueIndex:idx_absence_student_module_date"`
	ModuleID   uint      `gorm:"not null;uniqueIndex:idx_absence_student_module_date"`
	Date       time.Time `gorm:"not null;uniqueIndex:idx_absence_student_module_date"` // normalized to day boundary
	Justified  bool      `gorm:"default:false"`
	RecordedBy uint      `gorm:"not null"`

	Student *User   `gorm:"foreignKey:StudentID"`
	Module  *Module `gorm:"foreignKey:ModuleID"`
}
