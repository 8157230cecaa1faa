package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coride/internal/model"
	"coride/internal/repository"
)

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) ListFor(ctx context.Context, userID string) ([]model.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func newStoreFor(t *testing.T, userID string) *NotificationStore {
	t.Helper()
	store := NewNotificationStore(repository.NewMemoryRepositories(nil).Notifications)
	require.NoError(t, store.SetUser(context.Background(), &model.User{ID: userID}))
	return store
}

func TestNotificationStore_SetUser(t *testing.T) {
	ctx := context.Background()
	store := NewNotificationStore(repository.NewMemoryRepositories(nil).Notifications)
	assert.Empty(t, store.Notifications())

	require.NoError(t, store.SetUser(ctx, &model.User{ID: "user-3"}))
	ids := []string{}
	for _, n := range store.Notifications() {
		assert.Equal(t, "user-3", n.UserID)
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"notification-3", "notification-4"}, ids)

	require.NoError(t, store.SetUser(ctx, &model.User{ID: "user-4"}))
	assert.Empty(t, store.Notifications())

	require.NoError(t, store.SetUser(ctx, &model.User{ID: "user-2"}))
	assert.Len(t, store.Notifications(), 2)

	require.NoError(t, store.SetUser(ctx, nil))
	assert.Empty(t, store.Notifications())
	assert.Equal(t, "", store.UserID())
	assert.Equal(t, 0, store.UnreadCount())
}

func TestNotificationStore_SetUserKeepsOnlyOwnedNotifications(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("ListFor", mock.Anything, "user-9").Return([]model.Notification{
		{ID: "a", UserID: "user-9"},
		{ID: "b", UserID: "user-1"},
	}, nil)

	store := NewNotificationStore(repo)
	require.NoError(t, store.SetUser(context.Background(), &model.User{ID: "user-9"}))
	require.Len(t, store.Notifications(), 1)
	assert.Equal(t, "a", store.Notifications()[0].ID)
	repo.AssertExpectations(t)
}

func TestNotificationStore_SetUserError(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("ListFor", mock.Anything, "user-2").Return(nil, errors.New("db down"))

	store := NewNotificationStore(repo)
	assert.Error(t, store.SetUser(context.Background(), &model.User{ID: "user-2"}))
	assert.Empty(t, store.Notifications())
}

func TestNotificationStore_MarkAsRead(t *testing.T) {
	store := newStoreFor(t, "user-2")
	require.Equal(t, 1, store.UnreadCount())

	store.MarkAsRead("notification-2")
	assert.Equal(t, 0, store.UnreadCount())

	// idempotent, and unknown IDs are ignored
	store.MarkAsRead("notification-2")
	store.MarkAsRead("notification-404")
	assert.Equal(t, 0, store.UnreadCount())

	read := 0
	for _, n := range store.Notifications() {
		if n.Read {
			read++
		}
	}
	assert.Equal(t, 2, read)
}

func TestNotificationStore_MarkAsReadOnlyTouchesMatch(t *testing.T) {
	store := newStoreFor(t, "user-2")
	store.Add(NewNotification{Title: "A", Message: "a"})
	store.Add(NewNotification{Title: "B", Message: "b"})
	require.Equal(t, 3, store.UnreadCount())

	target := store.Notifications()[0].ID
	store.MarkAsRead(target)
	store.MarkAsRead(target)
	assert.Equal(t, 2, store.UnreadCount())
}

func TestNotificationStore_MarkAllAsRead(t *testing.T) {
	store := newStoreFor(t, "user-3")
	store.Add(NewNotification{Title: "A", Message: "a", Type: model.NotificationWarning})
	require.Equal(t, 2, store.UnreadCount())

	store.MarkAllAsRead()
	assert.Equal(t, 0, store.UnreadCount())

	empty := NewNotificationStore(repository.NewMemoryRepositories(nil).Notifications)
	empty.MarkAllAsRead()
	assert.Equal(t, 0, empty.UnreadCount())
}

func TestNotificationStore_Add(t *testing.T) {
	store := newStoreFor(t, "user-3")
	fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	first := store.Add(NewNotification{Title: "First", Message: "one", Link: "/rides"})
	second := store.Add(NewNotification{Title: "Second", Message: "two", Type: model.NotificationSuccess})

	assert.NotEqual(t, first.ID, second.ID)
	assert.Contains(t, first.ID, "notification-")
	assert.Equal(t, fixed, first.CreatedAt)
	assert.Equal(t, model.NotificationInfo, first.Type)
	assert.Equal(t, "user-3", first.UserID)
	assert.False(t, first.Read)

	all := store.Notifications()
	require.Len(t, all, 4)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, 3, store.UnreadCount())
}

func TestNotificationStore_NotificationsIsACopy(t *testing.T) {
	store := newStoreFor(t, "user-2")
	list := store.Notifications()
	list[0].Read = false
	list[1].Read = true
	assert.Equal(t, 1, store.UnreadCount())
}

func TestNotificationService_StoreAndPublish(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(repository.NewMemoryRepositories(nil).Notifications, time.Hour)
	sara := &model.User{ID: "user-2"}
	karim := &model.User{ID: "user-3"}

	s1, err := svc.Store(ctx, "s1", sara)
	require.NoError(t, err)
	s2, err := svc.Store(ctx, "s2", sara)
	require.NoError(t, err)
	s3, err := svc.Store(ctx, "s3", karim)
	require.NoError(t, err)

	again, err := svc.Store(ctx, "s1", sara)
	require.NoError(t, err)
	assert.Same(t, s1, again)

	delivered := svc.Publish("user-2", NewNotification{Title: "Ride Request", Message: "hello"})
	assert.Equal(t, 2, delivered)
	assert.Equal(t, 2, s1.UnreadCount())
	assert.Equal(t, 2, s2.UnreadCount())
	assert.Equal(t, 1, s3.UnreadCount())

	svc.Close("s2")
	assert.Equal(t, 1, svc.Publish("user-2", NewNotification{Title: "x", Message: "y"}))
	assert.Equal(t, 0, svc.Publish("user-4", NewNotification{Title: "x", Message: "y"}))

	// a session that changes user gets a fresh store
	switched, err := svc.Store(ctx, "s1", karim)
	require.NoError(t, err)
	assert.NotSame(t, s1, switched)
	assert.Equal(t, "user-3", switched.UserID())
}

func TestNotificationService_ExpiredStoresAreDropped(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewNotificationService(repository.NewMemoryRepositories(nil).Notifications, 30*time.Minute).(*notificationService)
	svc.now = func() time.Time { return now }
	sara := &model.User{ID: "user-2"}

	old, err := svc.Store(ctx, "s1", sara)
	require.NoError(t, err)
	_, err = svc.Store(ctx, "s2", sara)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	_, err = svc.Store(ctx, "s3", sara)
	require.NoError(t, err)
	assert.Equal(t, 3, svc.Publish("user-2", NewNotification{Title: "x", Message: "y"}))

	now = now.Add(10 * time.Minute)
	assert.Equal(t, 1, svc.Publish("user-2", NewNotification{Title: "x", Message: "y"}))
	assert.Len(t, svc.stores, 1)

	// an expired session that is looked up again gets a fresh store
	reopened, err := svc.Store(ctx, "s1", sara)
	require.NoError(t, err)
	assert.NotSame(t, old, reopened)

	now = now.Add(time.Hour)
	assert.Equal(t, 0, svc.Publish("user-2", NewNotification{Title: "x", Message: "y"}))
	assert.Empty(t, svc.stores)
}

func TestNotificationService_ZeroTTLKeepsStores(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewNotificationService(repository.NewMemoryRepositories(nil).Notifications, 0).(*notificationService)
	svc.now = func() time.Time { return now }

	_, err := svc.Store(ctx, "s1", &model.User{ID: "user-2"})
	require.NoError(t, err)

	now = now.Add(365 * 24 * time.Hour)
	assert.Equal(t, 1, svc.Publish("user-2", NewNotification{Title: "x", Message: "y"}))
}
