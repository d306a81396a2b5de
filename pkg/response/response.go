package response

import (
	"fmt"
	"net/http"

	errorpage "anoa.com/askify/internal/modules/errorpage/service"
	"anoa.com/askify/pkg/apperror"
	"anoa.com/askify/pkg/logger"
	"anoa.com/askify/pkg/validator"
	"github.com/gin-gonic/gin"
)

const (
	ClientIDKey = "client_id"
	UserIDKey   = "user_id"
	UserKey     = "user"
)

const msgInvalidInput = "Dữ liệu gửi lên không hợp lệ"

// GetClientID retrieves the client scope assigned by the client middleware
func GetClientID(c *gin.Context) (string, error) {
	clientID := c.GetString(ClientIDKey)
	if clientID == "" {
		return "", apperror.ErrUnauthorized
	}
	return clientID, nil
}

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (string, error) {
	userID := c.GetString(UserIDKey)
	if userID == "" {
		return "", apperror.ErrUnauthorized
	}
	return userID, nil
}

// BindingError turns a request binding failure into a 400. Validation
// failures carry the formatted field messages; a body that cannot be
// decoded at all is reported as invalid input.
func BindingError(err error) error {
	if !validator.IsValidationError(err) {
		return apperror.New(http.StatusBadRequest, msgInvalidInput, fmt.Errorf("%w: %v", apperror.ErrInvalidInput, err))
	}
	return apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrBadRequest)
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	redirect := errorpage.FromStatus(code).Path()

	// Log internal errors; their page depends on what failed
	if code >= http.StatusInternalServerError {
		logger.Log.Errorw("internal error", "path", c.FullPath(), "error", err)
		redirect = errorpage.FromError(err)
	}

	c.JSON(code, gin.H{
		"error":    err.Error(),
		"redirect": redirect,
	})
}
