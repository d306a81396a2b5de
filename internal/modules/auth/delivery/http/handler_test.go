package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/internal/modules/auth/dto"
	auth "anoa.com/askify/internal/modules/auth/service"
	"anoa.com/askify/pkg/kvstore"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	h := NewAuthHandler(auth.NewAuthService(store, nil, auth.Options{Secret: "s", TokenTTL: time.Hour}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(response.ClientIDKey, "client-1")
		c.Next()
	})
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)
	r.POST("/forgot-password", h.ForgotPassword)
	r.POST("/avatar", h.UploadAvatar)
	r.GET("/me", h.Me)
	r.PUT("/profile", h.UpdateProfile)
	return r
}

func send(r *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginMeLogout(t *testing.T) {
	r := setupRouter(t)

	w := send(r, http.MethodPost, "/login", dto.LoginRequest{Email: "a@example.com", Password: "x"})
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "Bearer", res.TokenType)

	w = send(r, http.MethodGet, "/me", nil)
	assert.Contains(t, w.Body.String(), "a@example.com")

	w = send(r, http.MethodPut, "/profile", map[string]string{"name": "Bình"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bình")

	w = send(r, http.MethodPut, "/profile", map[string]string{"avatar": ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"avatar"`)

	w = send(r, http.MethodPut, "/profile", map[string]string{"avatar": "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(r, http.MethodPut, "/profile", map[string]string{"email": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(r, http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = send(r, http.MethodGet, "/me", nil)
	assert.JSONEq(t, `{"data":null}`, w.Body.String())
}

func TestLogin_InvalidEmail(t *testing.T) {
	w := send(setupRouter(t), http.MethodPost, "/login", dto.LoginRequest{Email: "nope", Password: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email không hợp lệ")
}

func TestRegister_Validation(t *testing.T) {
	r := setupRouter(t)

	w := send(r, http.MethodPost, "/register", dto.RegisterRequest{
		Name:            "B",
		Email:           "b@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
		AcceptTerms:     true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Mật khẩu xác nhận không khớp")

	w = send(r, http.MethodPost, "/register", dto.RegisterRequest{
		Name:            "B",
		Email:           "b@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "điều khoản")

	w = send(r, http.MethodPost, "/register", dto.RegisterRequest{
		Name:            "B",
		Email:           "b@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		AcceptTerms:     true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestForgotPassword(t *testing.T) {
	w := send(setupRouter(t), http.MethodPost, "/forgot-password", dto.ForgotPasswordRequest{Email: "a@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sent":true`)
}

func TestUploadAvatar_MissingFile(t *testing.T) {
	w := send(setupRouter(t), http.MethodPost, "/avatar", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(auth.NewAuthService(kvstore.NewMemoryStore(), nil, auth.Options{Secret: "s"}))

	user := &entity.User{ID: "1", Name: "Nguyễn Văn A"}
	r := gin.New()
	r.GET("/profile", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set(response.UserIDKey, user.ID)
			c.Set(response.UserKey, user)
		}
		c.Next()
	}, h.GetProfile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer t")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"1"`)
}
