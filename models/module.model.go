package models

import "gorm.io/gorm"

// Module is a teaching unit students attend sessions for
type Module struct {
	gorm.Model
	Code      string `gorm:"unique;not null"` // e.g. "MATH-201"
	Name      string `gorm:"not null"`
	TeacherID uint   `gorm:"index"`
	Semester  string `gorm:"default:''"`
	IsDeleted bool   `gorm:"default:false"`
}
