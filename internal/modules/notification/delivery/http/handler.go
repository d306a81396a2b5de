package handler

import (
	"net/http"
	"time"

	"anoa.com/askify/internal/modules/notification/dto"
	notification "anoa.com/askify/internal/modules/notification/service"
	"anoa.com/askify/pkg/logger"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const pingInterval = 30 * time.Second

type NotificationHandler struct {
	service  notification.NotificationService
	upgrader websocket.Upgrader
}

func NewNotificationHandler(service notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	var filter dto.NotificationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, response.BindingError(err))
		return
	}

	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.GetNotifications(c.Request.Context(), scope, notification.Criteria{
		Filter: filter.Filter,
		Query:  filter.Query,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), scope)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), scope, c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã đánh dấu là đã đọc"})
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.MarkAllAsRead(c.Request.Context(), scope); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã đánh dấu tất cả là đã đọc"})
}

// HandleWebSocket streams the caller's unread count: once on connect and
// again whenever their read marks change.
func (h *NotificationHandler) HandleWebSocket(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	ctx := c.Request.Context()
	counts, stop, err := h.service.WatchUnreadCount(ctx, scope)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	defer stop()

	initial, err := h.service.UnreadCount(ctx, scope)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warnw("failed to upgrade websocket", "error", err)
		return
	}
	defer conn.Close()

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(dto.UnreadCountMessage{UnreadCount: initial}); err != nil {
		return
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case count, ok := <-counts:
			if !ok {
				return
			}
			if err := conn.WriteJSON(dto.UnreadCountMessage{UnreadCount: count}); err != nil {
				logger.Log.Debugw("websocket write failed", "scope", scope, "error", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case <-clientClosed:
			return
		case <-ctx.Done():
			return
		}
	}
}
