package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coride/internal/auth"
	apperrors "coride/internal/errors"
	"coride/internal/fixture"
	"coride/internal/model"
	"coride/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type authFixture struct {
	svc           AuthService
	sessions      *auth.MemorySessionRepository
	notifications NotificationService
	jwt           *auth.JWTService
}

func newAuthFixture(users repository.UserRepository) *authFixture {
	repos := repository.NewMemoryRepositories(nil)
	if users == nil {
		users = repos.Users
	}
	sessions := auth.NewMemorySessionRepository()
	notifications := NewNotificationService(repos.Notifications, time.Hour)
	jwtService := auth.NewJWTService("test-secret")
	return &authFixture{
		svc: NewAuthService(users, sessions, jwtService, notifications, AuthOptions{
			Organization: fixture.DefaultOrganization,
			SessionTTL:   time.Hour,
		}),
		sessions:      sessions,
		notifications: notifications,
		jwt:           jwtService,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	for _, want := range fixture.Load().Users {
		t.Run(want.Email, func(t *testing.T) {
			f := newAuthFixture(nil)
			for _, password := range []string{"", "password123", "anything at all"} {
				session, err := f.svc.Login(ctx, want.Email, password)
				require.NoError(t, err)
				assert.Equal(t, want, *session.User)
				assert.NotEmpty(t, session.ID)
				assert.NotEmpty(t, session.AccessToken)
				assert.NotEmpty(t, session.RefreshToken)

				current, err := f.svc.Current(ctx, session.ID)
				require.NoError(t, err)
				assert.Equal(t, want, *current)
			}
		})
	}

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(nil)
		for _, email := range []string{"nobody@coride.com", "", "ADMIN@CORIDE.COM"} {
			session, err := f.svc.Login(ctx, email, "password123")
			assert.Nil(t, session)
			assert.Equal(t, apperrors.ErrInvalidCredentials, err)

			var authErr *apperrors.AuthError
			assert.True(t, errors.As(err, &authErr))
		}
	})

	t.Run("repository failure is not an auth error", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "sara@coride.com").Return(nil, errors.New("db down"))
		f := newAuthFixture(users)

		_, err := f.svc.Login(ctx, "sara@coride.com", "x")
		require.Error(t, err)
		var authErr *apperrors.AuthError
		assert.False(t, errors.As(err, &authErr))
		users.AssertExpectations(t)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		email         string
		expectedError error
	}{
		{name: "new email", email: "new@coride.com"},
		{name: "another new email", email: "nadia@example.com"},
		{name: "existing admin email", email: "admin@coride.com", expectedError: apperrors.ErrEmailInUse},
		{name: "existing user email", email: "leila@coride.com", expectedError: apperrors.ErrEmailInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(nil)
			session, err := f.svc.Register(ctx, tt.email, "Nadia Idrissi", "secret1", "Ain Sebaa")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, session)
				return
			}

			require.NoError(t, err)
			user := session.User
			assert.Equal(t, model.RoleUser, user.Role)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, "Nadia Idrissi", user.Name)
			assert.Equal(t, "Ain Sebaa", user.Location)
			assert.Equal(t, fixture.DefaultOrganization, user.Organization)
			assert.Contains(t, user.ID, "user-")
			assert.False(t, user.CreatedAt.IsZero())

			current, err := f.svc.Current(ctx, session.ID)
			require.NoError(t, err)
			assert.Equal(t, user.ID, current.ID)
		})
	}
}

func TestAuthService_RegisterDoesNotPersistUser(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(nil)

	_, err := f.svc.Register(ctx, "new@coride.com", "New", "secret1", "Maarif")
	require.NoError(t, err)

	// the fixture set is unchanged, so the same email registers again
	_, err = f.svc.Register(ctx, "new@coride.com", "New", "secret1", "Maarif")
	assert.NoError(t, err)
	_, err = f.svc.Login(ctx, "new@coride.com", "secret1")
	assert.Equal(t, apperrors.ErrInvalidCredentials, err)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(nil)

	session, err := f.svc.Login(ctx, "karim@coride.com", "x")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, session.ID))
	require.NoError(t, f.svc.Logout(ctx, session.ID))

	_, err = f.svc.Current(ctx, session.ID)
	assert.Equal(t, apperrors.ErrNoSession, err)
	assert.Equal(t, 0, f.notifications.Publish("user-3", NewNotification{Title: "t", Message: "m"}))

	_, err = f.svc.Refresh(ctx, session.RefreshToken)
	assert.Equal(t, apperrors.ErrInvalidRefreshToken, err)
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(nil)

	session, err := f.svc.Login(ctx, "sara@coride.com", "x")
	require.NoError(t, err)

	access, err := f.svc.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	claims, err := f.jwt.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, auth.KindAccess, claims.Kind)
	assert.Equal(t, session.ID, claims.SessionID())
	assert.Equal(t, "user-2", claims.UserID)

	_, err = f.svc.Refresh(ctx, session.AccessToken)
	assert.Equal(t, apperrors.ErrInvalidRefreshToken, err)
	_, err = f.svc.Refresh(ctx, "garbage")
	assert.Equal(t, apperrors.ErrInvalidRefreshToken, err)
}

func TestAuthService_CurrentWithoutSession(t *testing.T) {
	f := newAuthFixture(nil)
	_, err := f.svc.Current(context.Background(), "")
	assert.Equal(t, apperrors.ErrNoSession, err)
	_, err = f.svc.Current(context.Background(), "unknown")
	assert.Equal(t, apperrors.ErrNoSession, err)
}

func TestAuthService_LoginOpensNotificationStore(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(nil)

	session, err := f.svc.Login(ctx, "sara@coride.com", "x")
	require.NoError(t, err)

	store, err := f.notifications.Store(ctx, session.ID, session.User)
	require.NoError(t, err)
	assert.Len(t, store.Notifications(), 2)
	assert.Equal(t, 1, store.UnreadCount())
}

func TestAuthService_ExpiredLoginsReleaseNotificationStores(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(nil)
	notifications := f.notifications.(*notificationService)
	now := time.Now()
	notifications.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		_, err := f.svc.Login(ctx, "sara@coride.com", "")
		require.NoError(t, err)
	}
	assert.Len(t, notifications.stores, 100)

	now = now.Add(time.Hour)
	assert.Equal(t, 0, f.notifications.Publish("user-2", NewNotification{Title: "t", Message: "m"}))
	assert.Empty(t, notifications.stores)
}
