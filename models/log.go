package models

import (
	"time"

	"gorm.io/gorm"
)

// Log is one meal entry. OccurredAt is when the meal was eaten; CreatedAt
// (from gorm.Model) is when the entry was recorded. All trend and streak
// math downstream works off OccurredAt.
type Log struct {
	gorm.Model
	UserID            uint      `gorm:"index;not null" json:"userId"`
	DishName          string    `gorm:"not null" json:"dishName"`
	Image             string    `json:"image,omitempty"`
	Ingredients       []string  `gorm:"serializer:json" json:"ingredients"`
	PreparationMethod string    `json:"preparationMethod,omitempty"`
	Servings          int       `gorm:"not null" json:"servings"`
	Calories          int       `gorm:"not null" json:"calories"`
	PhysicalFeedback  []string  `gorm:"serializer:json" json:"physicalFeedback"`
	Tags              []string  `gorm:"serializer:json" json:"tags"`
	MoodBefore        string    `json:"moodBeforeSelection,omitempty"`
	MoodAfter         string    `json:"moodAfterSelection,omitempty"`
	Reflection        string    `json:"reflection,omitempty"`
	OccurredAt        time.Time `gorm:"index;not null" json:"date"`
}
