package middleware

import (
	"context"
	"net/http"
	"strings"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/pkg/apperror"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves an access token to its session user and scope.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.User, string, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}

		// Fallback to query parameter "token" (useful for WebSockets)
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			response.ResponseError(c, apperror.New(http.StatusUnauthorized, "Bạn cần đăng nhập để truy cập", apperror.ErrUnauthorized))
			c.Abort()
			return
		}

		user, scope, err := m.verifier.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			response.ResponseError(c, err)
			c.Abort()
			return
		}

		// The token's session decides whose state is used.
		c.Set(response.ClientIDKey, scope)
		c.Set(response.UserIDKey, user.ID)
		c.Set(response.UserKey, user)
		c.Next()
	}
}
