package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fintrackpro/fintrack_app/internal/apperrors"
	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/core/session"
	"github.com/fintrackpro/fintrack_app/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionClaims is the session restoration token payload.
type sessionClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// sessionService manages login identity and the lifetime of session state.
type sessionService struct {
	users      portsrepo.UserRepository
	reconciler portssvc.ReconcilerSvcFacade

	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string

	mu     sync.RWMutex
	active map[string]*session.Session
}

// NewSessionService creates the session manager.
func NewSessionService(users portsrepo.UserRepository, reconciler portssvc.ReconcilerSvcFacade, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.SessionSvcFacade {
	return &sessionService{
		users:      users,
		reconciler: reconciler,
		jwtSecret:  jwtSecret,
		jwtExpiry:  jwtExpiry,
		jwtIssuer:  jwtIssuer,
		active:     make(map[string]*session.Session),
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// Login creates a demo identity from the display name, persists the profile,
// issues a restoration token, and runs the initial load (seed-check before
// first fetch, exactly once per login).
func (s *sessionService) Login(ctx context.Context, name string) (*session.Session, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", fmt.Errorf("%w: display name is required", apperrors.ErrValidation)
	}

	user := domain.User{
		UserID:    uuid.NewString(),
		Name:      name,
		Email:     deriveEmail(name),
		AvatarURL: deriveAvatarURL(name),
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to persist user profile", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to persist user profile: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("Failed to issue session token", slog.String("error", err.Error()))
		return nil, "", err
	}

	sess := session.New(user)
	s.mu.Lock()
	s.active[user.UserID] = sess
	s.mu.Unlock()

	s.initialLoad(ctx, sess)

	logger.Info("User logged in", slog.String("user_id", user.UserID), slog.Bool("seeded", sess.Seeded))
	return sess, token, nil
}

// Restore rebuilds a session from a previously issued token. It runs the same
// seed-check-then-fetch path as Login.
func (s *sessionService) Restore(ctx context.Context, token string) (*session.Session, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		logger.Warn("Session restore rejected", slog.String("error", errString(err)))
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.users.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to load user profile for restore", slog.String("error", err.Error()))
		return nil, err
	}

	sess := session.New(*user)
	s.mu.Lock()
	s.active[user.UserID] = sess
	s.mu.Unlock()

	s.initialLoad(ctx, sess)

	logger.Info("Session restored", slog.String("user_id", user.UserID))
	return sess, nil
}

// Reload re-runs the initial load for an active session. Used after a load
// failure left the session with empty collections.
func (s *sessionService) Reload(ctx context.Context, userID string) (*session.Session, error) {
	sess, ok := s.Active(userID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	s.initialLoad(ctx, sess)
	return sess, nil
}

// Logout discards the in-memory session. The store keeps its mirror; the
// caller clears the restoration token.
func (s *sessionService) Logout(userID string) {
	s.mu.Lock()
	delete(s.active, userID)
	s.mu.Unlock()
}

// Active returns the live session for a user, if one exists.
func (s *sessionService) Active(userID string) (*session.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.active[userID]
	return sess, ok
}

// initialLoad seeds a first-time user and then fetches all collections. The
// seed must complete before the fetch so freshly seeded data is visible in
// the first read. A failure leaves the session logged in with empty
// collections and LoadFailed set; the user retries by reloading.
func (s *sessionService) initialLoad(ctx context.Context, sess *session.Session) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.reconciler.SeedIfEmpty(ctx, sess); err != nil {
		logger.Error("Seed check failed during initial load", slog.String("error", err.Error()))
		sess.Lock()
		sess.LoadFailed = true
		sess.Unlock()
		return
	}
	if err := s.reconciler.Load(ctx, sess); err != nil {
		logger.Error("Initial load failed, session continues with empty collections", slog.String("error", err.Error()))
	}
}

func (s *sessionService) issueToken(user domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
		Name: user.Name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// deriveEmail builds the demo identity's email from the display name.
func deriveEmail(name string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return local + "@example.com"
}

// deriveAvatarURL points at a generated initials avatar for the name.
func deriveAvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=0D8ABC&color=fff"
}

func errString(err error) string {
	if err == nil {
		return "invalid token"
	}
	return err.Error()
}
