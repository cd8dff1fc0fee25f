package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AnakhaSuresh15/nibblenotes-backend/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{Svc: svc}
}

func (h *LogController) CreateLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var body services.LogInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	entry, err := h.Svc.Create(c.Request.Context(), userID, body)
	if err != nil {
		respondError(c, err, "Error creating log")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetLogs serves both fetch-by-id (?logId=) and fetch-by-day (?date=).
func (h *LogController) GetLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	if raw := c.Query("logId"); raw != "" {
		logID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid logId"})
			return
		}
		entry, err := h.Svc.GetByID(c.Request.Context(), userID, uint(logID))
		if err != nil {
			respondError(c, err, "Error fetching log")
			return
		}
		c.JSON(http.StatusOK, entry)
		return
	}

	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date query parameter is required"})
		return
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date"})
		return
	}

	logs, err := h.Svc.ListByDay(c.Request.Context(), userID, day)
	if err != nil {
		respondError(c, err, "Error fetching logs for date")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *LogController) EditLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	logID, err := strconv.ParseUint(c.Param("logId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "logId is required"})
		return
	}

	var body services.LogUpdateInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	entry, err := h.Svc.Update(c.Request.Context(), userID, uint(logID), body)
	if err != nil {
		respondError(c, err, "Error editing the log")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Log updated successfully",
		"log":     entry,
	})
}

func (h *LogController) DeleteLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	logID, err := strconv.ParseUint(c.Param("logId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "logId is required"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, uint(logID)); err != nil {
		respondError(c, err, "Error deleting log")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Log deleted successfully"})
}

// DeleteLogs removes a batch of logs given as a comma-separated id list.
func (h *LogController) DeleteLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var logIDs []uint
	for _, part := range strings.Split(c.Query("logs"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid log id: " + part})
			return
		}
		logIDs = append(logIDs, uint(id))
	}
	if len(logIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "logs parameter is required"})
		return
	}

	deleted, err := h.Svc.DeleteMany(c.Request.Context(), userID, logIDs)
	if err != nil {
		respondError(c, err, "Error deleting logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Logs deleted successfully",
		"deletedCount": deleted,
	})
}

func (h *LogController) SearchIngredients(c *gin.Context) {
	ingredients, err := h.Svc.SearchIngredients(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err, "Error searching ingredients")
		return
	}
	c.JSON(http.StatusOK, ingredients)
}
