package controllers

import (
	"net/http"

	"github.com/AnakhaSuresh15/nibblenotes-backend/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(push *services.PushService) *DeviceController {
	return &DeviceController{Push: push}
}

// RegisterDevice binds a device's push token to the authenticated user.
func (dc *DeviceController) RegisterDevice(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	if dc.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Push notifications are not configured"})
		return
	}

	var input services.RegisterDeviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing platform or token"})
		return
	}

	dev, err := dc.Push.RegisterDevice(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err, "Error registering device")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deviceId": dev.ID, "platform": dev.Platform})
}
