package models

import "gorm.io/gorm"

const (
	NotificationWarning = "warning"
	NotificationError   = "error"
	NotificationSuccess = "success"
	NotificationInfo    = "info"
)

// Notification is a one-way advisory to a user. Rows are never mutated after
// creation except for the read flag. DedupKey carries a uniqueness constraint
// so the same advisory (e.g. an absence-risk crossing) is only ever stored once.
type Notification struct {
	gorm.Model
	UserID   uint    `gorm:"not null;index"`
	Title    string  `gorm:"not null"`
	Message  string  `gorm:"type:text;not null"`
	Type     string  `gorm:"default:'info'"` // warning, error, success, info
	Link     *string
	DedupKey *string `gorm:"uniqueIndex"`
	IsRead   bool    `gorm:"default:false"`

	User *User `gorm:"foreignKey:UserID"`
}
