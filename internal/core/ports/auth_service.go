package ports

import (
	"context"

	"github.com/formalshoes/store-api/internal/core/domain"
)

// AuthService orchestrates registration, login and per-request identity
// resolution.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.PublicUser, error)
	// Login returns a signed session token. Unknown email and wrong password
	// are indistinguishable: both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// ResolveIdentity turns a raw Authorization header value into the full
	// stored user record, failing with domain.ErrUnauthenticated on any
	// missing, malformed, expired or orphaned token.
	ResolveIdentity(ctx context.Context, authorization string) (*domain.User, error)
}
