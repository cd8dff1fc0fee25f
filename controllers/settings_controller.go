package controllers

import (
	"net/http"

	"github.com/AnakhaSuresh15/nibblenotes-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetSettings(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	user, err := services.FindUserByID(userID)
	if err != nil {
		logrus.WithError(err).Error("Error fetching user settings")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  user.FirstName + " " + user.LastName,
		"email": user.Email,
	})
}

func UpdateSettings(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var input struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Email carries a unique index; reject a takeover of another account's
	// address the same way the register path does.
	if existing, err := services.FindUserByEmail(input.Email); err == nil && existing.ID != userID {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		return
	}

	if err := services.UpdateSettings(userID, input.Name, input.Email); err != nil {
		logrus.WithError(err).Error("Error updating user settings")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
