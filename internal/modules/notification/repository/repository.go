package repository

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/pkg/apperror"
	"gorm.io/gorm"
)

// NotificationRepository serves the shared notification feed. Read state is
// per client and lives outside the repository.
type NotificationRepository interface {
	FindAll(ctx context.Context) ([]entity.Notification, error)
	FindByID(ctx context.Context, id string) (*entity.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) FindAll(ctx context.Context) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := r.db.WithContext(ctx).
		Order("position asc").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	var notification entity.Notification
	if err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &notification, nil
}
