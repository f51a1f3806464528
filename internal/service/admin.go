package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ibrakam/PartyLand/internal/auth"
	"github.com/Ibrakam/PartyLand/internal/domain"
)

// AdminSession is a live admin console login.
type AdminSession struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// AdminService authenticates the admin console. There is a single
// configured operator account; sessions are held in memory and die with the
// process, which is acceptable for a one-person moderation console.
type AdminService struct {
	username     string
	passwordHash string
	ttl          time.Duration
	logger       *slog.Logger

	mu       sync.Mutex
	sessions map[string]*AdminSession
	now      func() time.Time
}

func NewAdminService(username, passwordHash string, ttl time.Duration, logger *slog.Logger) *AdminService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AdminService{
		username:     username,
		passwordHash: passwordHash,
		ttl:          ttl,
		logger:       logger,
		sessions:     make(map[string]*AdminSession),
		now:          time.Now,
	}
}

// Login verifies credentials and mints a session token. Wrong username and
// wrong password are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, username, password string) (*AdminSession, error) {
	const op = "admin.login"

	if s.username == "" || s.passwordHash == "" {
		return nil, domain.Unauthorized(op, "Admin console is not configured")
	}
	if username != s.username || auth.VerifyPassword(s.passwordHash, password) != nil {
		s.logger.WarnContext(ctx, "admin login rejected", slog.String("username", username))
		return nil, domain.Unauthorized(op, "Invalid username or password")
	}

	session := &AdminSession{
		Token:     uuid.NewString(),
		Username:  username,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "admin logged in", slog.String("username", username))
	return session, nil
}

// Validate resolves a session token. Expired sessions are dropped on sight.
func (s *AdminService) Validate(token string) (*AdminSession, error) {
	const op = "admin.session"

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.Unauthorized(op, "Admin session required")
	}
	if s.now().After(session.ExpiresAt) {
		delete(s.sessions, token)
		return nil, domain.Unauthorized(op, "Admin session expired")
	}
	return session, nil
}

// Logout revokes a session. Unknown tokens are ignored.
func (s *AdminService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
