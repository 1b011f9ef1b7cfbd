package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conseccomms/conseccomms/internal/shared/constants"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
)

func TestGetUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetUserIDFromContext(c)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)

	c.Set(constants.ContextKeyUserID, "7")
	_, err = GetUserIDFromContext(c)
	require.Error(t, err)

	c.Set(constants.ContextKeyUserID, uint(7))
	id, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type request struct {
		Email string `json:"email" validate:"required,email"`
	}

	newCtx := func(body string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	var req request
	err := BindJSON(newCtx(`{"email":`), &req)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetAppError(err).Type)

	err = BindJSON(newCtx(`{"email":"nope"}`), &req)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Details, "email must be a valid email address")

	require.NoError(t, BindJSON(newCtx(`{"email":"a@x.com"}`), &req))
	assert.Equal(t, "a@x.com", req.Email)
}
