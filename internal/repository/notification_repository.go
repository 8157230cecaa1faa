package repository

import (
	"context"

	"gorm.io/gorm"

	"coride/internal/model"
)

// NotificationRepository reads the notifications owned by a user.
type NotificationRepository interface {
	ListFor(ctx context.Context, userID string) ([]model.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListFor(ctx context.Context, userID string) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
