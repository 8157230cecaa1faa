package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"coride/internal/model"
	"coride/internal/repository"
)

// NewNotification is the caller-supplied part of a notification.
type NewNotification struct {
	Title   string                 `json:"title" validate:"required,max=255"`
	Message string                 `json:"message" validate:"required"`
	Type    model.NotificationType `json:"type" validate:"omitempty,oneof=info success warning error"`
	Link    string                 `json:"link" validate:"omitempty,max=255"`
}

// NotificationStore holds the notifications visible to one session user.
// Mutations stay local to the store.
type NotificationStore struct {
	mu            sync.RWMutex
	repo          repository.NotificationRepository
	userID        string
	notifications []model.Notification
	now           func() time.Time
}

// NewNotificationStore creates an empty store with no user.
func NewNotificationStore(repo repository.NotificationRepository) *NotificationStore {
	return &NotificationStore{repo: repo, now: time.Now}
}

// SetUser recomputes the visible set for user. A nil user empties the store.
func (s *NotificationStore) SetUser(ctx context.Context, user *model.User) error {
	if user == nil {
		s.mu.Lock()
		s.userID = ""
		s.notifications = nil
		s.mu.Unlock()
		return nil
	}

	loaded, err := s.repo.ListFor(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	visible := make([]model.Notification, 0, len(loaded))
	for _, n := range loaded {
		if n.UserID == user.ID {
			visible = append(visible, n)
		}
	}

	s.mu.Lock()
	s.userID = user.ID
	s.notifications = visible
	s.mu.Unlock()
	return nil
}

// UserID returns the ID of the user the store belongs to, or "".
func (s *NotificationStore) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Notifications returns a copy of the visible notifications.
func (s *NotificationStore) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Notification{}, s.notifications...)
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAsRead marks the notification with id as read. Unknown ids are ignored.
func (s *NotificationStore) MarkAsRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
		}
	}
}

// MarkAllAsRead marks every notification as read.
func (s *NotificationStore) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// Add stores a new unread notification in front of the list.
func (s *NotificationStore) Add(in NewNotification) model.Notification {
	kind := in.Type
	if kind == "" {
		kind = model.NotificationInfo
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	n := model.Notification{
		ID:        model.NewID(model.NotificationIDPrefix),
		UserID:    s.userID,
		Title:     in.Title,
		Message:   in.Message,
		Type:      kind,
		Link:      in.Link,
		CreatedAt: s.now().UTC(),
	}
	s.notifications = append([]model.Notification{n}, s.notifications...)
	return n
}
