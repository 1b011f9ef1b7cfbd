package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/shared/constants"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
)

// GetUserIDFromContext returns the acting user set by the auth middleware.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("User not authenticated")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("User not authenticated")
	}
	return id, nil
}

func GetSessionIDFromContext(c *gin.Context) string {
	return c.GetString(constants.ContextKeySessionID)
}

// BindJSON decodes the request body into req and runs the validate tags.
func BindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewValidationError("Invalid request body", err.Error())
	}
	return ValidateStruct(req)
}
