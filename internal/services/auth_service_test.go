package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/eventrix/eventrix-backend/internal/cache"
	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
	"github.com/eventrix/eventrix-backend/internal/session"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	users    *mockUserRepo
	denylist *cache.MemoryDenylist
	svc      *AuthService
	admin    *models.User
	ctx      context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.users = &mockUserRepo{}
	s.denylist = cache.NewMemoryDenylist()
	s.svc = NewAuthService(s.users, s.denylist, 2)
	s.ctx = context.Background()

	s.admin = &models.User{Name: "Root", Email: "root@eventrix.local", Role: models.UserRoleSuperAdmin, Status: models.UserStatusActive}
	require.NoError(s.T(), s.admin.SetPassword("changeme123"))
	s.users.On("FindByEmail", s.ctx, "root@eventrix.local").Return(s.admin, nil)
	s.users.On("FindByEmail", s.ctx, mock.Anything).Return(nil, repository.ErrNotFound)
	s.users.On("TouchLastLogin", s.ctx, s.admin.ID, mock.Anything).Return(nil)
}

func (s *AuthServiceTestSuite) TestLoginAuthenticatesSession() {
	sess := session.New()
	resp, err := s.svc.Login(s.ctx, sess, &LoginRequest{Email: "root@eventrix.local", Password: "changeme123"})
	s.Require().NoError(err)

	s.Equal("Bearer", resp.TokenType)
	s.Equal(7200, resp.ExpiresIn)
	s.NotNil(resp.User.LastLoginAt)
	s.True(sess.IsAuthenticated())

	claims, err := utils.ValidateJWT(resp.AccessToken)
	s.Require().NoError(err)
	identity, _ := sess.Identity()
	s.Equal(claims.ID, identity.TokenID)
	s.True(sess.HasRole(models.UserRoleSuperAdmin))
}

func (s *AuthServiceTestSuite) TestLoginRejectsBadCredentials() {
	sess := session.New()
	_, err := s.svc.Login(s.ctx, sess, &LoginRequest{Email: "root@eventrix.local", Password: "wrong"})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.svc.Login(s.ctx, sess, &LoginRequest{Email: "nobody@eventrix.local", Password: "changeme123"})
	s.ErrorIs(err, ErrInvalidCredentials)
	s.False(sess.IsAuthenticated())
}

func (s *AuthServiceTestSuite) TestLoginRejectsSuspendedAccount() {
	s.admin.Status = models.UserStatusSuspended
	_, err := s.svc.Login(s.ctx, session.New(), &LoginRequest{Email: "root@eventrix.local", Password: "changeme123"})
	s.ErrorIs(err, ErrAccountSuspended)
}

func (s *AuthServiceTestSuite) TestLoginTwiceFails() {
	sess := session.New()
	_, err := s.svc.Login(s.ctx, sess, &LoginRequest{Email: "root@eventrix.local", Password: "changeme123"})
	s.Require().NoError(err)

	_, err = s.svc.Login(s.ctx, sess, &LoginRequest{Email: "root@eventrix.local", Password: "changeme123"})
	s.ErrorIs(err, session.ErrAlreadyAuthenticated)
}

func (s *AuthServiceTestSuite) TestLogoutRevokesToken() {
	sess := session.New()
	_, err := s.svc.Login(s.ctx, sess, &LoginRequest{Email: "root@eventrix.local", Password: "changeme123"})
	s.Require().NoError(err)
	identity, _ := sess.Identity()

	s.Require().NoError(s.svc.Logout(s.ctx, sess))
	s.False(sess.IsAuthenticated())

	revoked, err := s.denylist.IsRevoked(s.ctx, identity.TokenID)
	s.Require().NoError(err)
	s.True(revoked)

	s.ErrorIs(s.svc.Logout(s.ctx, sess), session.ErrNotAuthenticated)
}

func (s *AuthServiceTestSuite) TestMeRequiresSession() {
	_, err := s.svc.Me(s.ctx, session.New())
	s.ErrorIs(err, session.ErrNotAuthenticated)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
