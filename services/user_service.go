package services

import (
	"strings"

	"github.com/AnakhaSuresh15/nibblenotes-backend/config"
	"github.com/AnakhaSuresh15/nibblenotes-backend/models"
)

func FindUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

func FindUserByID(userID uint) (models.User, error) {
	var user models.User
	result := config.DB.First(&user, userID)
	return user, result.Error
}

// UpdateSettings splits the display name the same way the frontend joins it:
// first word is the first name, the rest the last name.
func UpdateSettings(userID uint, name, email string) error {
	parts := strings.Fields(name)
	firstName := ""
	lastName := ""
	if len(parts) > 0 {
		firstName = parts[0]
		lastName = strings.Join(parts[1:], " ")
	}

	result := config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"first_name": firstName,
			"last_name":  lastName,
			"email":      email,
		})
	return result.Error
}
