package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shelfmark/catalog-api/internal/core/domain"
	"github.com/shelfmark/catalog-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	limiter  ports.LoginLimiter // optional; nil disables throttling
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, limiter ports.LoginLimiter, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register hashes the password and inserts the identity. Uniqueness is
// enforced by the repository's insert-if-absent, not by a prior read.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" || role == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a fresh token. Failed attempts
// feed the limiter; a successful login clears the counter.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooMany(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("login limiter unavailable")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		if s.limiter != nil {
			if err := s.limiter.RecordFailure(ctx, username); err != nil {
				s.logger.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
			}
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Clear(ctx, username); err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to clear login failures")
		}
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return token, user, nil
}
