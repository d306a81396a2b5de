package handler

import (
	"net/http"
	"strconv"
	"strings"

	theme "anoa.com/askify/internal/modules/theme/service"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
)

// PrefersColorSchemeHeader is the client hint browsers send when asked via
// Accept-CH.
const PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

type ThemeHandler struct {
	service theme.ThemeService
}

func NewThemeHandler(service theme.ThemeService) *ThemeHandler {
	return &ThemeHandler{service: service}
}

func prefersDark(c *gin.Context) bool {
	if hint := c.GetHeader(PrefersColorSchemeHeader); hint != "" {
		return strings.EqualFold(strings.Trim(hint, `"`), theme.Dark)
	}
	dark, _ := strconv.ParseBool(c.Query("prefers_dark"))
	return dark
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Header("Accept-CH", PrefersColorSchemeHeader)
	state, err := h.service.Resolve(c.Request.Context(), scope, prefersDark(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": state})
}

func (h *ThemeHandler) ToggleTheme(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	state, err := h.service.Toggle(c.Request.Context(), scope, prefersDark(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": state})
}
