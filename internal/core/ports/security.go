package ports

import (
	"context"
	"time"

	"github.com/shelfmark/catalog-api/internal/core/domain"
)

// PasswordHasher defines the contract for password hashing so the services
// do not care about the algorithm.
type PasswordHasher interface {
	// Hash produces a one-way salted record of the plaintext.
	Hash(password string) (string, error)
	// Verify reports whether plaintext matches the stored record. A wrong
	// password and a malformed record are indistinguishable: both false.
	Verify(password, record string) bool
}

// TokenService mints and verifies the signed, time-bounded credentials that
// stand in for a session. There is no server-side token state.
type TokenService interface {
	// Issue returns an opaque signed token carrying username, role and a
	// validity window of ttl from now.
	Issue(username, role string, ttl time.Duration) (string, error)
	// Verify checks the signature and validity window. It returns the
	// embedded claims, or domain.ErrTokenExpired / domain.ErrTokenInvalid.
	Verify(token string) (*domain.Claims, error)
}

// LoginLimiter throttles repeated failed logins per username.
type LoginLimiter interface {
	TooMany(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Clear(ctx context.Context, username string) error
}
