package ports

import (
	"context"

	"github.com/shelfmark/catalog-api/internal/core/domain"
)

// BookRepository defines persistence operations for catalog items. Each
// operation is individually atomic; Update applies its patch under the same
// lock that located the book.
type BookRepository interface {
	Insert(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Update(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error)
	Delete(ctx context.Context, id int64) (*domain.Book, error)
}
