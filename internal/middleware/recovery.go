package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	errorpage "anoa.com/askify/internal/modules/errorpage/service"
	"anoa.com/askify/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Fallback is the body sent when a handler panics: a generic error panel
// with the actions the client may offer.
type Fallback struct {
	Error    string   `json:"error"`
	Message  string   `json:"message"`
	Redirect string   `json:"redirect"`
	Actions  []string `json:"actions"`
	Detail   string   `json:"detail,omitempty"`
}

var fallbackActions = []string{"reload", "reset", "home"}

// Recovery is the error boundary of the API. A panic in any later handler
// is logged and turned into a 500 Fallback; the server keeps serving.
// Panic details are included only when showDetail is set.
func Recovery(showDetail bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"panic", recovered,
			"stack", string(debug.Stack()),
		)

		body := Fallback{
			Error:    "Đã xảy ra lỗi",
			Message:  "Ứng dụng gặp sự cố không mong muốn. Vui lòng thử lại.",
			Redirect: errorpage.FromStatus(http.StatusInternalServerError).Path(),
			Actions:  fallbackActions,
		}
		if showDetail {
			body.Detail = fmt.Sprint(recovered)
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
