package models

import "gorm.io/gorm"

// UserDevice is an SNS platform endpoint registered for push delivery.
// The raw device token never hits the database, only its hash.
type UserDevice struct {
	gorm.Model
	UserID      uint   `gorm:"index" json:"userId"`
	Platform    string `gorm:"size:16" json:"platform"`
	TokenHash   string `gorm:"size:64" json:"-"`
	EndpointARN string `gorm:"size:256" json:"-"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`
}
