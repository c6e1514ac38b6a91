package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shelfmark/catalog-api/internal/core/domain"
	"github.com/shelfmark/catalog-api/internal/core/ports"
)

// BookService implements catalog use-cases. Reads are open; the transport
// layer guarantees mutating calls only arrive with an admin principal, so
// actor is trusted here and used for attribution only.
type BookService struct {
	repo   ports.BookRepository
	audit  ports.AuditSink // optional; nil disables the audit trail
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, audit ports.AuditSink, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, audit: audit, logger: logger}
}

func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	return s.repo.List(ctx)
}

func (s *BookService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookService) CreateBook(ctx context.Context, actor string, input ports.CreateBookInput) (*domain.Book, error) {
	now := time.Now().UTC()
	book := &domain.Book{
		Title:         input.Title,
		Author:        input.Author,
		ISBN:          input.ISBN,
		PublishedYear: input.PublishedYear,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, book)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create book")
		return nil, err
	}

	s.recordAudit(actor, ports.AuditActionBookCreate, created.Title)
	s.logger.Info().Int64("book_id", created.ID).Str("actor", actor).Msg("book created")
	return created, nil
}

func (s *BookService) UpdateBook(ctx context.Context, actor string, id int64, input ports.UpdateBookInput) (*domain.Book, error) {
	updated, err := s.repo.Update(ctx, id, domain.BookPatch{
		Title:         input.Title,
		Author:        input.Author,
		ISBN:          input.ISBN,
		PublishedYear: input.PublishedYear,
	})
	if err != nil {
		return nil, err
	}

	s.recordAudit(actor, ports.AuditActionBookUpdate, updated.Title)
	s.logger.Info().Int64("book_id", updated.ID).Str("actor", actor).Msg("book updated")
	return updated, nil
}

func (s *BookService) DeleteBook(ctx context.Context, actor string, id int64) (*domain.Book, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recordAudit(actor, ports.AuditActionBookDelete, deleted.Title)
	s.logger.Info().Int64("book_id", deleted.ID).Str("actor", actor).Msg("book deleted")
	return deleted, nil
}

func (s *BookService) recordAudit(actor, action, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEntry{
		Actor:     actor,
		Action:    action,
		Outcome:   ports.AuditOutcomeSuccess,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
