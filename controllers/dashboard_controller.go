package controllers

import (
	"net/http"

	"github.com/AnakhaSuresh15/nibblenotes-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

func (h *DashboardController) GetSummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	out, err := h.Svc.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Error fetching dashboard summary")
		return
	}
	c.JSON(http.StatusOK, out)
}
