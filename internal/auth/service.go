// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

const minPasswordLength = 6

type UserInfo struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Tier         string
}

type NewUser struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id int64) (*UserInfo, error)
	Create(ctx context.Context, in NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// Result carries the user a session was issued for and the token to hand to
// the client.
type Result struct {
	UserID int64
	Token  string
}

type Service struct {
	users    UserProvider
	sessions SessionStore
}

func NewService(users UserProvider, sessions SessionStore) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*Result, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, core.InvalidInputf("email and password are required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, core.InvalidInputf(
			"password must be at least %d characters",
			minPasswordLength,
		)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, NewUser{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	core.AddSpanEvent(ctx, "user.registered")

	return s.issue(ctx, user.ID)
}

// Login verifies credentials and issues a fresh session. currentToken is the
// caller's existing session, if any; it is revoked so the cookie never
// outlives a change of user.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
	currentToken string,
) (*Result, error) {
	email := normalizeEmail(req.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	s.revoke(ctx, currentToken)

	return s.issue(ctx, user.ID)
}

// Logout drops the session bound to token. It never fails; store errors are
// logged.
func (s *Service) Logout(ctx context.Context, token string) {
	s.revoke(ctx, token)
}

// ResolveSession maps a session token to the request principal. Unknown or
// expired tokens resolve to an anonymous principal.
func (s *Service) ResolveSession(
	ctx context.Context,
	token string,
) (core.Principal, error) {
	if token == "" {
		return core.Anonymous(), nil
	}

	userID, err := s.sessions.Resolve(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		return core.Anonymous(), nil
	}
	if err != nil {
		return core.Anonymous(), err
	}

	return core.Principal{UserID: userID}, nil
}

func (s *Service) issue(ctx context.Context, userID int64) (*Result, error) {
	token, err := s.sessions.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	return &Result{UserID: userID, Token: token}, nil
}

func (s *Service) revoke(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		slog.WarnContext(ctx, "session revoke failed", "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
