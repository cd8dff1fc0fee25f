package controllers

import (
	"net/http"
	"testing"

	"github.com/AnakhaSuresh15/nibblenotes-backend/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func logRouter(t *testing.T, userID uint) (*gin.Engine, sqlmock.Sqlmock) {
	gdb, mock := newMockGorm(t)
	r := authedRouter(userID)
	h := NewLogController(services.NewLogService(gdb, nil, nil))
	r.GET("/api/logs", h.GetLogs)
	return r, mock
}

func TestGetLogsRequiresDate(t *testing.T) {
	r, mock := logRouter(t, 1)

	w := doJSON(r, http.MethodGet, "/api/logs", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Date query parameter is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLogsRejectsBadDate(t *testing.T) {
	r, mock := logRouter(t, 1)

	w := doJSON(r, http.MethodGet, "/api/logs?date=March+1st", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLogsRejectsBadLogID(t *testing.T) {
	r, mock := logRouter(t, 1)

	w := doJSON(r, http.MethodGet, "/api/logs?logId=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid logId")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLogsUnknownIDIsNotFound(t *testing.T) {
	r, mock := logRouter(t, 1)

	mock.ExpectQuery(`SELECT \* FROM "logs" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(r, http.MethodGet, "/api/logs?logId=999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
