package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "coride/internal/errors"
	"coride/internal/model"
	"coride/internal/repository"
)

// SendMessageInput is a message to deliver to another user.
type SendMessageInput struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	RideID     string `json:"rideId"`
	Content    string `json:"content" validate:"required,max=2000"`
}

// MessageService handles direct messages between users.
type MessageService interface {
	Inbox(ctx context.Context, user *model.User) ([]model.Message, error)
	Conversation(ctx context.Context, user *model.User, otherID string) ([]model.Message, error)
	Send(ctx context.Context, sender *model.User, in SendMessageInput) (*model.Message, error)
	MarkRead(ctx context.Context, user *model.User, messageID string) error
}

type messageService struct {
	messages      repository.MessageRepository
	users         repository.UserRepository
	rides         repository.RideRepository
	notifications NotificationService
	now           func() time.Time
}

// NewMessageService creates a new message service.
func NewMessageService(
	messages repository.MessageRepository,
	users repository.UserRepository,
	rides repository.RideRepository,
	notifications NotificationService,
) MessageService {
	return &messageService{
		messages:      messages,
		users:         users,
		rides:         rides,
		notifications: notifications,
		now:           time.Now,
	}
}

// Inbox lists every message the user sent or received, oldest first.
func (s *messageService) Inbox(ctx context.Context, user *model.User) ([]model.Message, error) {
	messages, err := s.messages.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if messages == nil {
		messages = []model.Message{}
	}
	return messages, nil
}

// Conversation lists the messages exchanged between user and otherID.
func (s *messageService) Conversation(ctx context.Context, user *model.User, otherID string) ([]model.Message, error) {
	if otherID == user.ID {
		return nil, apperrors.NewValidationError("userId", "cannot open a conversation with yourself")
	}
	all, err := s.Inbox(ctx, user)
	if err != nil {
		return nil, err
	}
	thread := make([]model.Message, 0)
	for _, m := range all {
		if m.Involves(user.ID) && m.Involves(otherID) {
			thread = append(thread, m)
		}
	}
	return thread, nil
}

// Send stores a message and notifies the receiver.
func (s *messageService) Send(ctx context.Context, sender *model.User, in SendMessageInput) (*model.Message, error) {
	in.Content = strings.TrimSpace(in.Content)
	if err := check(&in); err != nil {
		return nil, err
	}
	if in.ReceiverID == sender.ID {
		return nil, apperrors.NewValidationError("receiverId", "cannot send a message to yourself")
	}

	if _, err := s.users.FindByID(ctx, in.ReceiverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find receiver: %w", err)
	}
	if in.RideID != "" {
		if _, err := s.rides.FindByID(ctx, in.RideID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.ErrRideNotFound
			}
			return nil, fmt.Errorf("find ride: %w", err)
		}
	}

	message := &model.Message{
		ID:         model.NewID(model.MessageIDPrefix),
		SenderID:   sender.ID,
		ReceiverID: in.ReceiverID,
		RideID:     in.RideID,
		Content:    in.Content,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.notifications.Publish(in.ReceiverID, NewNotification{
		Title:   "New Message",
		Message: fmt.Sprintf("You have received a new message from %s", sender.Name),
		Type:    model.NotificationInfo,
		Link:    "/messages",
	})
	return message, nil
}

// MarkRead marks a received message as read. Only the receiver may do so.
func (s *messageService) MarkRead(ctx context.Context, user *model.User, messageID string) error {
	message, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return fmt.Errorf("find message: %w", err)
	}
	if message.ReceiverID != user.ID {
		return apperrors.ErrForbidden
	}
	if message.Read {
		return nil
	}
	if err := s.messages.MarkRead(ctx, messageID); err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}
