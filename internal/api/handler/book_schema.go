package handler

import "time"

type createBookRequest struct {
	Title         string `json:"title"          validate:"required,min=1,max=256"`
	Author        string `json:"author"         validate:"required,min=1,max=256"`
	ISBN          string `json:"isbn"           validate:"omitempty,max=32"`
	PublishedYear int    `json:"published_year" validate:"omitempty,gte=0"`
}

// updateBookRequest is a partial update: absent fields keep their value.
type updateBookRequest struct {
	Title         *string `json:"title"          validate:"omitempty,min=1,max=256"`
	Author        *string `json:"author"         validate:"omitempty,min=1,max=256"`
	ISBN          *string `json:"isbn"           validate:"omitempty,max=32"`
	PublishedYear *int    `json:"published_year" validate:"omitempty,gte=0"`
}

type bookResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn,omitempty"`
	PublishedYear int       `json:"published_year,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
