package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shelfmark/catalog-api/internal/core/domain"
)

// tokenClaims is the JWT payload layout. iat/exp ride in RegisteredClaims.
type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService with HS256-signed JWTs.
// Verification is a pure function of token + secret + clock, safe for
// unlimited concurrent calls.
type JWTTokenService struct {
	secret []byte
}

func NewJWTTokenService(secret string) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret)}
}

// Issue mints a token valid for ttl from now. A zero or negative ttl is
// permitted and produces a token that Verify will report as expired.
func (s *JWTTokenService) Issue(username, role string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Rejections are data, not panics: domain.ErrTokenExpired for a stale
// token, domain.ErrTokenInvalid for everything else (bad signature,
// malformed token, unexpected algorithm).
func (s *JWTTokenService) Verify(token string) (*domain.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	tc, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims := &domain.Claims{
		Username: tc.Username,
		Role:     tc.Role,
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}
	return claims, nil
}
