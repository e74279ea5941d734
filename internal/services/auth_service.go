// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/cache"
	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
	"github.com/eventrix/eventrix-backend/internal/session"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type AuthService struct {
	users    UserRepository
	denylist cache.Denylist
	ttlHours int
	log      *logrus.Entry
	now      func() time.Time
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewAuthService(users UserRepository, denylist cache.Denylist, ttlHours int) *AuthService {
	return &AuthService{
		users:    users,
		denylist: denylist,
		ttlHours: ttlHours,
		log:      logrus.WithField("component", "auth"),
		now:      time.Now,
	}
}

// Login checks the credentials and moves s to Authenticated under a newly
// issued token.
func (s *AuthService) Login(ctx context.Context, sess *session.Session, req *LoginRequest) (*AuthResponse, error) {
	if sess.IsAuthenticated() {
		return nil, session.ErrAlreadyAuthenticated
	}

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := user.CheckPassword(req.Password); err != nil {
		s.log.WithField("email", user.Email).Warn("Failed login attempt")
		return nil, ErrInvalidCredentials
	}
	if user.Status != models.UserStatusActive {
		return nil, ErrAccountSuspended
	}

	token, claims, err := utils.GenerateJWT(user.ID, user.Email, user.Name, string(user.Role), s.ttlHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	identity := session.Identity{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := sess.Login(identity); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("Failed to record last login")
	}
	user.LastLoginAt = &now

	return &AuthResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.ttlHours * 3600,
	}, nil
}

// Logout revokes the session's token for the rest of its lifetime and
// moves the session back to Anonymous.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	identity, err := sess.Logout()
	if err != nil {
		return err
	}
	if err := s.denylist.Revoke(ctx, identity.TokenID, identity.ExpiresAt.Sub(s.now())); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.log.WithField("user_id", identity.UserID).Info("User logged out")
	return nil
}

// Me returns the account behind an authenticated session.
func (s *AuthService) Me(ctx context.Context, sess *session.Session) (*models.User, error) {
	identity, ok := sess.Identity()
	if !ok {
		return nil, session.ErrNotAuthenticated
	}
	user, err := s.users.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
