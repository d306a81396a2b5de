package http

import (
	"errors"
	"net/http"
	"strconv"

	errorpage "anoa.com/askify/internal/modules/errorpage/service"
	"anoa.com/askify/pkg/apperror"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
)

type ErrorPageHandler struct{}

func NewErrorPageHandler() *ErrorPageHandler {
	return &ErrorPageHandler{}
}

// GetPage serves the content of /error/:errorCode?.
func (h *ErrorPageHandler) GetPage(c *gin.Context) {
	page := errorpage.GetPage(c.Param("code"), c.Query("message"))
	c.JSON(http.StatusOK, gin.H{"data": page})
}

// Resolve tells the client which error page a failure belongs to. The
// failure is given as an HTTP status, an error message, or the fields of
// an error info (code, message, redirect_to), in that order of precedence.
func (h *ErrorPageHandler) Resolve(c *gin.Context) {
	if raw := c.Query("status"); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			response.ResponseError(c, apperror.New(http.StatusBadRequest, "status must be a number", apperror.ErrBadRequest))
			return
		}

		info := errorpage.FromStatus(status)
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"info": info,
				"path": info.Path(),
			},
		})
		return
	}

	if msg := c.Query("error"); msg != "" {
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{"path": errorpage.FromError(errors.New(msg))},
		})
		return
	}

	info := errorpage.Info{
		Code:       c.Query("code"),
		Message:    c.Query("message"),
		RedirectTo: c.Query("redirect_to"),
	}
	if info == (errorpage.Info{}) {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "status, error or code is required", apperror.ErrBadRequest))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"info": info,
			"path": errorpage.FromInfo(info),
		},
	})
}

// NotFound is the catch-all route.
func (h *ErrorPageHandler) NotFound(c *gin.Context) {
	page := errorpage.GetPage("404", "")
	c.JSON(http.StatusNotFound, gin.H{
		"error":    apperror.ErrNotFound.Error(),
		"redirect": errorpage.Info{Code: "404"}.Path(),
		"data":     page,
	})
}
