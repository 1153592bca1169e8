package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/formalshoes/store-api/internal/api/metrics"
	"github.com/formalshoes/store-api/internal/core/domain"
	"github.com/formalshoes/store-api/internal/core/ports"
	"github.com/formalshoes/store-api/internal/pkg/password"
	"github.com/formalshoes/store-api/internal/pkg/token"
)

// AuthService implements registration, login and identity resolution.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Manager
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Manager, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Register creates a new account. Emails are unique case-insensitively, so
// the address is lowercased before any lookup or write.
func (s *AuthService) Register(ctx context.Context, name, email, plain string) (*domain.PublicUser, error) {
	email = normalizeEmail(email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "conflict").Inc()
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// The unique index closes the race between the lookup above and the
		// insert; a concurrent registration still surfaces as a conflict.
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "conflict").Inc()
		}
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "ok").Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user registered")

	pub := created.Public()
	return &pub, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, plain string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "denied").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(plain, user.PasswordHash) {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "denied").Inc()
		return "", domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return tok, nil
}

// ResolveIdentity gates protected operations: it parses the Authorization
// header, validates the token and loads the full user record. Every failure
// mode collapses into ErrUnauthenticated, including a valid token whose
// subject no longer exists (deleted accounts).
func (s *AuthService) ResolveIdentity(ctx context.Context, authorization string) (*domain.User, error) {
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := s.tokens.Validate(parts[1])
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
