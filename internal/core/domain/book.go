package domain

import (
	"errors"
	"time"
)

var ErrBookNotFound = errors.New("book not found")

// Book is the catalog aggregate. Reads are public; mutations require the
// admin role, enforced at the transport layer.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn,omitempty"`
	PublishedYear int       `json:"published_year,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookPatch carries a partial update. Nil fields are left unchanged.
type BookPatch struct {
	Title         *string
	Author        *string
	ISBN          *string
	PublishedYear *int
}
