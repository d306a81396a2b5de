package middleware

import (
	"net/http"

	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ClientIDHeader = "X-Client-ID"
	ClientCookie   = "askify_client"

	clientCookieMaxAge = 365 * 24 * 60 * 60
	maxClientIDLength  = 64
)

// ClientScope assigns every request the client scope its per-client state
// is stored under. It is taken from the X-Client-ID header, then the
// askify_client cookie; a new client gets a fresh id in both.
func ClientScope(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(ClientIDHeader)
		if id == "" {
			id, _ = c.Cookie(ClientCookie)
		}
		if id == "" || len(id) > maxClientIDLength {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ClientCookie, id, clientCookieMaxAge, "/", "", secureCookie, true)
		}

		c.Header(ClientIDHeader, id)
		c.Set(response.ClientIDKey, id)
		c.Next()
	}
}
