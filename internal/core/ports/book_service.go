package ports

import (
	"context"

	"github.com/shelfmark/catalog-api/internal/core/domain"
)

// CreateBookInput carries all data needed to add a catalog item.
type CreateBookInput struct {
	Title         string
	Author        string
	ISBN          string
	PublishedYear int
}

// UpdateBookInput is a partial update; nil fields are left unchanged.
type UpdateBookInput struct {
	Title         *string
	Author        *string
	ISBN          *string
	PublishedYear *int
}

// BookService defines use-case operations for the catalog.
type BookService interface {
	ListBooks(ctx context.Context) ([]*domain.Book, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
	CreateBook(ctx context.Context, actor string, input CreateBookInput) (*domain.Book, error)
	UpdateBook(ctx context.Context, actor string, id int64, input UpdateBookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, actor string, id int64) (*domain.Book, error)
}
