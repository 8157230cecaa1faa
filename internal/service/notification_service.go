package service

import (
	"context"
	"sync"
	"time"

	"coride/internal/model"
	"coride/internal/repository"
)

// NotificationService keeps one NotificationStore per session.
type NotificationService interface {
	// Store returns the session's store, creating it for user when missing,
	// expired, or when the session now belongs to a different user.
	Store(ctx context.Context, sessionID string, user *model.User) (*NotificationStore, error)
	// Close drops the session's store.
	Close(sessionID string)
	// Publish adds a notification to every open store of userID and returns
	// how many stores received it.
	Publish(userID string, in NewNotification) int
}

type openStore struct {
	store     *NotificationStore
	expiresAt time.Time
}

func (o openStore) expired(now time.Time) bool {
	return !o.expiresAt.IsZero() && !now.Before(o.expiresAt)
}

type notificationService struct {
	repo   repository.NotificationRepository
	ttl    time.Duration
	now    func() time.Time
	mu     sync.Mutex
	stores map[string]openStore
}

// NewNotificationService creates a new notification service. A store lives
// for ttl after it is opened, matching the session it belongs to; a zero ttl
// keeps stores until Close.
func NewNotificationService(repo repository.NotificationRepository, ttl time.Duration) NotificationService {
	return &notificationService{
		repo:   repo,
		ttl:    ttl,
		now:    time.Now,
		stores: make(map[string]openStore),
	}
}

func (s *notificationService) Store(ctx context.Context, sessionID string, user *model.User) (*NotificationStore, error) {
	s.mu.Lock()
	s.sweepLocked()
	open, ok := s.stores[sessionID]
	s.mu.Unlock()

	if ok && user != nil && open.store.UserID() == user.ID {
		return open.store, nil
	}

	store := NewNotificationStore(s.repo)
	if err := store.SetUser(ctx, user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// another request may have opened the store meanwhile
	if existing, ok := s.stores[sessionID]; ok && user != nil && existing.store.UserID() == user.ID {
		return existing.store, nil
	}
	open = openStore{store: store}
	if s.ttl > 0 {
		open.expiresAt = s.now().Add(s.ttl)
	}
	s.stores[sessionID] = open
	return store, nil
}

func (s *notificationService) Close(sessionID string) {
	s.mu.Lock()
	delete(s.stores, sessionID)
	s.mu.Unlock()
}

func (s *notificationService) Publish(userID string, in NewNotification) int {
	s.mu.Lock()
	s.sweepLocked()
	targets := make([]*NotificationStore, 0)
	for _, open := range s.stores {
		if open.store.UserID() == userID {
			targets = append(targets, open.store)
		}
	}
	s.mu.Unlock()

	for _, store := range targets {
		store.Add(in)
	}
	return len(targets)
}

// sweepLocked drops stores whose session has expired. s.mu must be held.
func (s *notificationService) sweepLocked() {
	now := s.now()
	for id, open := range s.stores {
		if open.expired(now) {
			delete(s.stores, id)
		}
	}
}
