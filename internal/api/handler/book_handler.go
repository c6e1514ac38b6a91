package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shelfmark/catalog-api/internal/api/metrics"
	"github.com/shelfmark/catalog-api/internal/core/domain"
	"github.com/shelfmark/catalog-api/internal/core/ports"
)

// BookHandler handles HTTP requests for catalog operations. Reads are open
// to anyone; mutations reach this handler only after the Auth and RBAC
// middleware have passed.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books.
//
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Success      200  {array}  bookResponse
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.ListBooks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookListResponse(books))
}

// Get handles GET /books/:id.
//
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  bookResponse
// @Failure      404  {object}  messageResponse
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "book not found"})
	}

	book, err := h.service.GetBook(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "book not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(book))
}

// Create handles POST /books (admin only).
//
// @Summary      Add a book to the catalog
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookRequest  true  "Book details"
// @Success      201   {object}  bookResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	created, err := h.service.CreateBook(c.Request().Context(), principal.Username, toCreateBookInput(req))
	if err != nil {
		return err
	}

	metrics.BookMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toBookResponse(created))
}

// Update handles PUT /books/:id (admin only). Absent fields keep their value.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Book ID"
// @Param        body  body      updateBookRequest  true  "Fields to change"
// @Success      200   {object}  bookResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "book not found"})
	}

	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	updated, err := h.service.UpdateBook(c.Request().Context(), principal.Username, id, toUpdateBookInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "book not found"})
		}
		return err
	}

	metrics.BookMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toBookResponse(updated))
}

// Delete handles DELETE /books/:id (admin only). The removed book is
// returned in the response body.
//
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  bookResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "book not found"})
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteBook(c.Request().Context(), principal.Username, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "book not found"})
		}
		return err
	}

	metrics.BookMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, toBookResponse(deleted))
}

// bookID parses the :id path parameter. A non-numeric id can never match a
// stored book, so callers treat the failure as not found.
func bookID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
