package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName     string
	LastName      string
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	ResetToken    string
	ResetTokenExp time.Time
}
