package repository

import (
	"context"

	"gorm.io/gorm"

	"coride/internal/model"
)

// MessageRepository defines message persistence operations.
type MessageRepository interface {
	// ListForUser returns messages sent or received by userID, oldest first.
	ListForUser(ctx context.Context, userID string) ([]model.Message, error)
	FindByID(ctx context.Context, id string) (*model.Message, error)
	Create(ctx context.Context, message *model.Message) error
	MarkRead(ctx context.Context, id string) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) ListForUser(ctx context.Context, userID string) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) FindByID(ctx context.Context, id string) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) MarkRead(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ?", id).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// read may already be true; confirm the row exists
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
