package errorpage

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
)

const (
	CodeNetwork = "network"
	CodeTimeout = "timeout"
)

// Info describes where a failed request should send the user.
// RedirectTo overrides Code and Message when set.
type Info struct {
	Code       string `json:"code"`
	Message    string `json:"message,omitempty"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

var statusTable = map[int]Info{
	http.StatusBadRequest:          {Code: "400", Message: "Yêu cầu không hợp lệ"},
	http.StatusUnauthorized:        {Code: "401", Message: "Bạn cần đăng nhập để truy cập"},
	http.StatusForbidden:           {Code: "403", Message: "Bạn không có quyền truy cập"},
	http.StatusNotFound:            {Code: "404", Message: "Không tìm thấy tài nguyên"},
	http.StatusTooManyRequests:     {Code: "429", Message: "Quá nhiều yêu cầu, vui lòng thử lại sau"},
	http.StatusInternalServerError: {Code: "500", Message: "Lỗi máy chủ nội bộ"},
}

// FromStatus maps an HTTP status to its error info. Statuses outside the
// table are treated as 500.
func FromStatus(status int) Info {
	if info, ok := statusTable[status]; ok {
		return info
	}
	return statusTable[http.StatusInternalServerError]
}

// Path renders the error page path for the info.
func (i Info) Path() string {
	if i.RedirectTo != "" {
		return i.RedirectTo
	}
	code := i.Code
	if code == "" {
		code = "500"
	}
	if i.Message == "" {
		return "/error/" + code
	}
	return "/error/" + code + "?message=" + escape(i.Message)
}

// FromInfo is the structured-info entry point of the router.
func FromInfo(info Info) string {
	return info.Path()
}

// FromMessage routes a bare error message to the generic server error page.
func FromMessage(message string) string {
	return Info{Code: "500", Message: message}.Path()
}

// FromError classifies err as a network failure, a timeout or a generic
// server error and returns the page path.
func FromError(err error) string {
	if err == nil {
		return "/error/500"
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "/error/" + CodeTimeout
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return "/error/" + CodeTimeout
		}
		return "/error/" + CodeNetwork
	}

	// message checks: network wins over timeout
	msg := err.Error()
	if strings.Contains(msg, "fetch") || strings.Contains(msg, "network") {
		return "/error/" + CodeNetwork
	}
	if strings.Contains(msg, "timeout") {
		return "/error/" + CodeTimeout
	}

	return FromMessage(msg)
}

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escape matches encodeURIComponent, which browsers use for the message
// query parameter: spaces become %20 and !'()* stay literal.
func escape(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}
