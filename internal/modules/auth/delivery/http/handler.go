package handler

import (
	"fmt"
	"net/http"

	"anoa.com/askify/internal/modules/auth/dto"
	auth "anoa.com/askify/internal/modules/auth/service"
	"anoa.com/askify/pkg/apperror"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20

type AuthHandler struct {
	service auth.AuthService
}

func NewAuthHandler(service auth.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func writeResult(c *gin.Context, result dto.AuthResult) {
	if !result.Success {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, response.BindingError(err))
		return
	}

	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	writeResult(c, h.service.Login(c.Request.Context(), scope, req))
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, response.BindingError(err))
		return
	}

	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	writeResult(c, h.service.Register(c.Request.Context(), scope, req))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Logout(c.Request.Context(), scope); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã đăng xuất"})
}

// Me returns the session user, or null for a logged out client.
func (h *AuthHandler) Me(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	user, err := h.service.CurrentUser(c.Request.Context(), scope)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// GetProfile returns the user of the verified token.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	user, ok := c.Get(response.UserKey)
	if !ok {
		response.ResponseError(c, fmt.Errorf("session user %s: %w", userID, apperror.ErrUnauthorized))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, response.BindingError(err))
		return
	}

	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), scope, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "Vui lòng chọn ảnh đại diện", apperror.ErrBadRequest))
		return
	}
	if fileHeader.Size > maxAvatarSize {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "Ảnh đại diện tối đa 5MB", apperror.ErrBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	defer file.Close()

	user, err := h.service.UploadAvatar(c.Request.Context(), scope, dto.AvatarFile{
		Reader:   file,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, response.BindingError(err))
		return
	}

	res, err := h.service.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}
