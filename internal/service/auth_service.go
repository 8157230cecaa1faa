package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coride/internal/auth"
	apperrors "coride/internal/errors"
	"coride/internal/model"
	"coride/internal/repository"
)

// Session is an authenticated session and the tokens that address it.
type Session struct {
	ID           string      `json:"-"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         *model.User `json:"user"`
}

// AuthService manages the current-session user.
type AuthService interface {
	// Login starts a session for the user with email. The password is not checked.
	Login(ctx context.Context, email, password string) (*Session, error)
	// Register starts a session for a new user that is not written to the user repository.
	Register(ctx context.Context, email, name, password, location string) (*Session, error)
	// Logout clears the session. It succeeds even if the session is already gone.
	Logout(ctx context.Context, sessionID string) error
	// Current rehydrates the session user or returns ErrNoSession.
	Current(ctx context.Context, sessionID string) (*model.User, error)
	// Refresh issues a new access token for a live session.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// AuthOptions configures AuthService.
type AuthOptions struct {
	Organization string
	SessionTTL   time.Duration
}

type authService struct {
	users         repository.UserRepository
	sessions      auth.SessionRepository
	jwtService    *auth.JWTService
	notifications NotificationService
	opts          AuthOptions
	now           func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	sessions auth.SessionRepository,
	jwtService *auth.JWTService,
	notifications NotificationService,
	opts AuthOptions,
) AuthService {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = auth.RefreshTokenExpiry
	}
	return &authService{
		users:         users,
		sessions:      sessions,
		jwtService:    jwtService,
		notifications: notifications,
		opts:          opts,
		now:           time.Now,
	}
}

// Login authenticates by email only.
func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return s.start(ctx, user)
}

// Register synthesizes a new user and makes it the current session.
func (s *authService) Register(ctx context.Context, email, name, password, location string) (*Session, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailInUse
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	user := &model.User{
		ID:           model.NewID(model.UserIDPrefix),
		Email:        email,
		Name:         name,
		Role:         model.RoleUser,
		Organization: s.opts.Organization,
		Location:     location,
		CreatedAt:    s.now().UTC(),
	}

	return s.start(ctx, user)
}

func (s *authService) start(ctx context.Context, user *model.User) (*Session, error) {
	sessionID := uuid.NewString()

	accessToken, err := s.jwtService.GenerateAccessToken(sessionID, user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(sessionID, user)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.sessions.Set(ctx, sessionID, user, s.opts.SessionTTL); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	if _, err := s.notifications.Store(ctx, sessionID, user); err != nil {
		_ = s.sessions.Clear(ctx, sessionID)
		return nil, fmt.Errorf("open notifications: %w", err)
	}

	return &Session{
		ID:           sessionID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Logout clears the session record and its notification store.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	s.notifications.Close(sessionID)
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current loads the session user.
func (s *authService) Current(ctx context.Context, sessionID string) (*model.User, error) {
	if sessionID == "" {
		return nil, apperrors.ErrNoSession
	}
	user, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNoSession
	}
	return user, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.Kind != auth.KindRefresh {
		return "", apperrors.ErrInvalidRefreshToken
	}

	user, err := s.sessions.Get(ctx, claims.SessionID())
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if user == nil || user.ID != claims.UserID {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.SessionID(), user)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}
