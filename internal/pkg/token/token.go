// Package token issues and validates signed, time-limited session tokens.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
	ErrMalformed        = errors.New("token malformed")
)

// DefaultTTL applies when no token lifetime is configured.
const DefaultTTL = 60 * time.Minute

// Claims is the decoded payload of a valid session token.
type Claims struct {
	SubjectID string
	Email     string
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Manager signs and verifies session tokens with a symmetric secret. The
// secret and TTL are fixed at construction and never mutated.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue produces an HS256 token carrying the subject id, email and an
// absolute expiry of now + TTL.
func (m *Manager) Issue(subjectID, email string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: email,
	})
	return t.SignedString(m.secret)
}

// Validate parses and verifies a token string. Failures are reported as one
// of ErrExpired, ErrInvalidSignature or ErrMalformed; a token without a
// subject claim counts as malformed.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &sessionClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrInvalidSignature
	case err != nil:
		return nil, ErrMalformed
	}
	if !t.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}
	return &Claims{SubjectID: claims.Subject, Email: claims.Email}, nil
}
