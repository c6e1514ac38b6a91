package handler

import (
	"github.com/shelfmark/catalog-api/internal/core/domain"
	"github.com/shelfmark/catalog-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateBookInput(req createBookRequest) ports.CreateBookInput {
	return ports.CreateBookInput{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
	}
}

func toUpdateBookInput(req updateBookRequest) ports.UpdateBookInput {
	return ports.UpdateBookInput{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
	}
}

// --- Domain → HTTP response ---

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		PublishedYear: b.PublishedYear,
		CreatedAt:     b.CreatedAt.UTC(),
		UpdatedAt:     b.UpdatedAt.UTC(),
	}
}

func toBookListResponse(books []*domain.Book) []bookResponse {
	out := make([]bookResponse, len(books))
	for i, b := range books {
		out[i] = toBookResponse(b)
	}
	return out
}
