package domain

import (
	"errors"
	"time"
)

var ErrTokenMissing = errors.New("authorization token required")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrForbidden = errors.New("access forbidden")

// Claims is the verified content of an access token. It exists only for the
// duration of one verification; nothing stores it server-side.
type Claims struct {
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the request-scoped identity derived from verified Claims.
// It is only ever constructed from a token whose signature checked out.
type Principal struct {
	Username string
	Role     string
}
