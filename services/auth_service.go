package services

import (
	"errors"

	"github.com/AnakhaSuresh15/nibblenotes-backend/config"
	"github.com/AnakhaSuresh15/nibblenotes-backend/models"
	"github.com/AnakhaSuresh15/nibblenotes-backend/utils"
)

func RegisterUser(firstName, lastName, email, password string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashedPassword,
	}

	if result := config.DB.Create(&user); result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("invalid credentials")
	}
	return &user, nil
}
