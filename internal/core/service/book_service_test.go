package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shelfmark/catalog-api/internal/core/domain"
	"github.com/shelfmark/catalog-api/internal/core/ports"
)

type stubBookRepo struct {
	books  map[int64]*domain.Book
	nextID int64
}

func newStubBookRepo() *stubBookRepo {
	return &stubBookRepo{books: make(map[int64]*domain.Book), nextID: 1}
}

func (r *stubBookRepo) Insert(_ context.Context, book *domain.Book) (*domain.Book, error) {
	stored := *book
	stored.ID = r.nextID
	r.nextID++
	r.books[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubBookRepo) FindByID(_ context.Context, id int64) (*domain.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	out := *b
	return &out, nil
}

func (r *stubBookRepo) List(_ context.Context) ([]*domain.Book, error) {
	out := make([]*domain.Book, 0, len(r.books))
	for _, b := range r.books {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *stubBookRepo) Update(_ context.Context, id int64, patch domain.BookPatch) (*domain.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	out := *b
	return &out, nil
}

func (r *stubBookRepo) Delete(_ context.Context, id int64) (*domain.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	delete(r.books, id)
	out := *b
	return &out, nil
}

type captureSink struct {
	entries []ports.AuditEntry
}

func (s *captureSink) Enqueue(entry ports.AuditEntry) {
	s.entries = append(s.entries, entry)
}

func TestBookService_CreateBook(t *testing.T) {
	repo := newStubBookRepo()
	sink := &captureSink{}
	svc := NewBookService(repo, sink, zerolog.Nop())

	created, err := svc.CreateBook(context.Background(), "alice", ports.CreateBookInput{
		Title:  "Dune",
		Author: "Frank Herbert",
	})
	if err != nil {
		t.Fatalf("CreateBook returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
	if len(sink.entries) != 1 || sink.entries[0].Action != ports.AuditActionBookCreate || sink.entries[0].Actor != "alice" {
		t.Fatalf("unexpected audit entries: %+v", sink.entries)
	}
}

func TestBookService_UpdateBook(t *testing.T) {
	repo := newStubBookRepo()
	svc := NewBookService(repo, nil, zerolog.Nop())

	created, _ := svc.CreateBook(context.Background(), "alice", ports.CreateBookInput{Title: "Dune", Author: "Frank Herbert"})

	title := "Dune Messiah"
	updated, err := svc.UpdateBook(context.Background(), "alice", created.ID, ports.UpdateBookInput{Title: &title})
	if err != nil {
		t.Fatalf("UpdateBook returned error: %v", err)
	}
	if updated.Title != "Dune Messiah" {
		t.Fatalf("title not updated: %s", updated.Title)
	}
	if updated.Author != "Frank Herbert" {
		t.Fatalf("author must be untouched by partial update: %s", updated.Author)
	}
}

func TestBookService_UpdateBook_NotFound(t *testing.T) {
	svc := NewBookService(newStubBookRepo(), nil, zerolog.Nop())

	title := "x"
	if _, err := svc.UpdateBook(context.Background(), "alice", 999, ports.UpdateBookInput{Title: &title}); !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookService_DeleteBook(t *testing.T) {
	repo := newStubBookRepo()
	svc := NewBookService(repo, nil, zerolog.Nop())

	created, _ := svc.CreateBook(context.Background(), "alice", ports.CreateBookInput{Title: "Dune", Author: "Frank Herbert"})

	deleted, err := svc.DeleteBook(context.Background(), "alice", created.ID)
	if err != nil {
		t.Fatalf("DeleteBook returned error: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("expected the removed book back, got %+v", deleted)
	}

	if _, err := svc.GetBook(context.Background(), created.ID); !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound after delete, got %v", err)
	}
}
