// internal/session/session.go
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventrix/eventrix-backend/internal/models"
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

var (
	ErrAlreadyAuthenticated = errors.New("session: already authenticated")
	ErrNotAuthenticated     = errors.New("session: not authenticated")
)

// Identity is who an authenticated session belongs to.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	Role      models.UserRole
	TokenID   string
	ExpiresAt time.Time
}

// Session moves between Anonymous and Authenticated. It is safe for
// concurrent use.
type Session struct {
	mu       sync.RWMutex
	state    State
	identity Identity
}

func New() *Session {
	return &Session{}
}

// Login moves an anonymous session to Authenticated.
func (s *Session) Login(id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Authenticated {
		return ErrAlreadyAuthenticated
	}
	s.state = Authenticated
	s.identity = id
	return nil
}

// Logout moves an authenticated session back to Anonymous and returns the
// identity it held.
func (s *Session) Logout() (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Authenticated {
		return Identity{}, ErrNotAuthenticated
	}
	id := s.identity
	s.state = Anonymous
	s.identity = Identity{}
	return id, nil
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == Authenticated
}

func (s *Session) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.state == Authenticated
}

// HasRole reports whether the session is authenticated with one of roles.
func (s *Session) HasRole(roles ...models.UserRole) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return false
	}
	for _, r := range roles {
		if s.identity.Role == r {
			return true
		}
	}
	return false
}

const contextKey = "session"

// Attach stores s on the request context.
func Attach(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

// From returns the request's session. Requests that never went through the
// session middleware get a fresh anonymous session.
func From(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := New()
	Attach(c, s)
	return s
}
