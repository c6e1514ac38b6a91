package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shelfmark/catalog-api/internal/core/domain"
)

// BookStore is an in-process catalog store with sequential integer IDs.
// Every operation is atomic under the store mutex; Update applies its patch
// while still holding the lock that located the book.
type BookStore struct {
	mu     sync.RWMutex
	books  map[int64]*domain.Book
	nextID int64
}

func NewBookStore() *BookStore {
	return &BookStore{books: make(map[int64]*domain.Book), nextID: 1}
}

func (s *BookStore) Insert(_ context.Context, book *domain.Book) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *book
	stored.ID = s.nextID
	s.nextID++
	s.books[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (s *BookStore) FindByID(_ context.Context, id int64) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}

	out := *book
	return &out, nil
}

// List returns all books ordered by ID.
func (s *BookStore) List(_ context.Context) ([]*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Book, 0, len(s.books))
	for _, book := range s.books {
		copied := *book
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *BookStore) Update(_ context.Context, id int64, patch domain.BookPatch) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}

	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.ISBN != nil {
		book.ISBN = *patch.ISBN
	}
	if patch.PublishedYear != nil {
		book.PublishedYear = *patch.PublishedYear
	}
	book.UpdatedAt = time.Now().UTC()

	out := *book
	return &out, nil
}

func (s *BookStore) Delete(_ context.Context, id int64) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	delete(s.books, id)

	out := *book
	return &out, nil
}
