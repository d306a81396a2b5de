package dto

import "anoa.com/askify/internal/entity"

type NotificationFilter struct {
	Filter string `form:"filter" binding:"max=20"`
	Query  string `form:"q" binding:"max=100"`
}

type NotificationListResponse struct {
	Data        []entity.Notification `json:"data"`
	Total       int                   `json:"total"`
	UnreadCount int                   `json:"unread_count"`
}

type UnreadCountMessage struct {
	UnreadCount int `json:"unread_count"`
}
