// controllers/insights_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AnakhaSuresh15/nibblenotes-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type InsightsController struct {
	Svc *services.InsightsService
}

func NewInsightsController(svc *services.InsightsService) *InsightsController {
	return &InsightsController{Svc: svc}
}

func (h *InsightsController) GetInsights(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	// Non-numeric or non-positive values fall back to the 30-day default
	// inside the service.
	days, err := strconv.Atoi(c.Query("timeFilter"))
	if err != nil {
		days = 0
	}

	out, err := h.Svc.Insights(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err, "Error fetching insights data")
		return
	}
	c.JSON(http.StatusOK, out)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// respondError maps service error kinds onto HTTP statuses. Store and
// internal failures are logged server-side and answered with a generic
// message only.
func respondError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
	case errors.Is(err, services.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	default:
		logrus.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
	}
}
