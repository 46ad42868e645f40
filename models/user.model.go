package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName    string     `gorm:"default:''"`
	LastName     string     `gorm:"default:''"`
	Email        string     `gorm:"unique;not null"`
	Role         string     `gorm:"default:'STUDENT'"` // STUDENT, TEACHER, ADMIN
	EnrollmentNo string     `gorm:"default:''"`        // student registration number
	LastLogin    *time.Time `json:"last_login"`
	IsDeleted    bool       `gorm:"default:false"`
}
