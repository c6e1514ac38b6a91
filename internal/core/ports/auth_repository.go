package ports

import (
	"context"

	"github.com/shelfmark/catalog-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// Create is an atomic insert-if-absent: two concurrent registrations for the
// same username must never both succeed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
