package repository

import (
	"context"
	"fmt"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/pkg/apperror"
)

type memoryNotificationRepository struct {
	notifications []entity.Notification
}

func NewMemoryNotificationRepository(notifications []entity.Notification) NotificationRepository {
	return &memoryNotificationRepository{notifications: notifications}
}

func (r *memoryNotificationRepository) FindAll(ctx context.Context) ([]entity.Notification, error) {
	out := make([]entity.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out, nil
}

func (r *memoryNotificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			found := n
			return &found, nil
		}
	}
	return nil, fmt.Errorf("notification %s: %w", id, apperror.ErrNotFound)
}
