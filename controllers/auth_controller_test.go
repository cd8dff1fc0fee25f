package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/forgot-password", ForgotPassword)
	r.POST("/api/auth/reset-password", ResetPassword)
	return r
}

func resetTokenRow(exp time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password", "reset_token", "reset_token_exp"}).
		AddRow(1, "ada@example.com", "$2a$10$old", "ABC123", exp)
}

func TestResetPassword(t *testing.T) {
	mock := swapConfigDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE reset_token = \$1`).
		WillReturnRows(resetTokenRow(time.Now().Add(10 * time.Minute)))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doJSON(authRouter(), http.MethodPost, "/api/auth/reset-password",
		`{"token":"ABC123","newPassword":"brandnew1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password reset successfully")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed write must not be reported as a successful reset: the old
// password and the still-valid token would otherwise survive silently.
func TestResetPasswordSaveFailure(t *testing.T) {
	mock := swapConfigDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE reset_token = \$1`).
		WillReturnRows(resetTokenRow(time.Now().Add(10 * time.Minute)))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	w := doJSON(authRouter(), http.MethodPost, "/api/auth/reset-password",
		`{"token":"ABC123","newPassword":"brandnew1"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "successfully")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetPasswordExpiredToken(t *testing.T) {
	mock := swapConfigDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE reset_token = \$1`).
		WillReturnRows(resetTokenRow(time.Now().Add(-time.Minute)))

	w := doJSON(authRouter(), http.MethodPost, "/api/auth/reset-password",
		`{"token":"ABC123","newPassword":"brandnew1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPasswordSaveFailure(t *testing.T) {
	mock := swapConfigDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(resetTokenRow(time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	w := doJSON(authRouter(), http.MethodPost, "/api/auth/forgot-password",
		`{"email":"ada@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Unknown addresses get the same answer as known ones.
func TestForgotPasswordUnknownEmail(t *testing.T) {
	mock := swapConfigDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(authRouter(), http.MethodPost, "/api/auth/forgot-password",
		`{"email":"nobody@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "If the email exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}
