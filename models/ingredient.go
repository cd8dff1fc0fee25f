package models

import (
	"gorm.io/gorm"
)

// Ingredient backs the typeahead on the create-log form.
type Ingredient struct {
	gorm.Model
	Name string `gorm:"index;not null" json:"name"`
}
