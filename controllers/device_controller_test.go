package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterDeviceWhenPushUnconfigured(t *testing.T) {
	r := authedRouter(1)
	r.POST("/api/devices/register", NewDeviceController(nil).RegisterDevice)

	w := doJSON(r, http.MethodPost, "/api/devices/register",
		`{"platform":"android","token":"tok"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRegisterDeviceUnauthorized(t *testing.T) {
	r := authedRouter(0)
	r.POST("/api/devices/register", NewDeviceController(nil).RegisterDevice)

	w := doJSON(r, http.MethodPost, "/api/devices/register",
		`{"platform":"android","token":"tok"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
