package controllers

import (
	"fmt"
	"net/http"

	"github.com/AnakhaSuresh15/nibblenotes-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UploadImage accepts a data-URL encoded meal photo and returns its public
// URL for the log's image field.
func UploadImage(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var body struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image is required"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(body.Image, fmt.Sprintf("user-%d", userID))
	if err != nil {
		logrus.WithError(err).Error("Error uploading image")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
