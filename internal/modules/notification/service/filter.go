package service

import (
	"strings"

	"anoa.com/askify/internal/entity"
)

const (
	FilterAll    = "all"
	FilterUnread = "unread"
)

// Criteria narrows the notification view. Filter is "all", "unread" or a
// notification type; anything else behaves like "all".
type Criteria struct {
	Filter string
	Query  string
}

func (c Criteria) keep(n entity.Notification) bool {
	switch c.Filter {
	case FilterUnread:
		if n.IsRead {
			return false
		}
	case FilterAll, "":
	default:
		if isKnownType(c.Filter) && string(n.Type) != c.Filter {
			return false
		}
	}

	if c.Query == "" {
		return true
	}
	q := strings.ToLower(c.Query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Message), q) ||
		strings.Contains(strings.ToLower(n.UserName), q)
}

func isKnownType(t string) bool {
	switch entity.NotificationType(t) {
	case entity.NotificationQuestion, entity.NotificationAnswer, entity.NotificationLike,
		entity.NotificationComment, entity.NotificationSystem, entity.NotificationFollow:
		return true
	}
	return false
}

// FilterNotifications returns the matching notifications in their original
// order. The input slice is not modified.
func FilterNotifications(notifications []entity.Notification, c Criteria) []entity.Notification {
	out := make([]entity.Notification, 0, len(notifications))
	for _, n := range notifications {
		if c.keep(n) {
			out = append(out, n)
		}
	}
	return out
}

func CountUnread(notifications []entity.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}
