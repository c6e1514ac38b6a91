package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shelfmark/catalog-api/internal/api/middleware"
	"github.com/shelfmark/catalog-api/internal/core/domain"
	"github.com/shelfmark/catalog-api/internal/core/ports"
)

type stubBookService struct {
	listFn   func(ctx context.Context) ([]*domain.Book, error)
	getFn    func(ctx context.Context, id int64) (*domain.Book, error)
	createFn func(ctx context.Context, actor string, input ports.CreateBookInput) (*domain.Book, error)
	updateFn func(ctx context.Context, actor string, id int64, input ports.UpdateBookInput) (*domain.Book, error)
	deleteFn func(ctx context.Context, actor string, id int64) (*domain.Book, error)
}

func (s *stubBookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	return s.listFn(ctx)
}
func (s *stubBookService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	return s.getFn(ctx, id)
}
func (s *stubBookService) CreateBook(ctx context.Context, actor string, input ports.CreateBookInput) (*domain.Book, error) {
	return s.createFn(ctx, actor, input)
}
func (s *stubBookService) UpdateBook(ctx context.Context, actor string, id int64, input ports.UpdateBookInput) (*domain.Book, error) {
	return s.updateFn(ctx, actor, id, input)
}
func (s *stubBookService) DeleteBook(ctx context.Context, actor string, id int64) (*domain.Book, error) {
	return s.deleteFn(ctx, actor, id)
}

func newBookTestContext(t *testing.T, method, path, body string, admin bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if admin {
		c.Set(middleware.PrincipalKey, domain.Principal{Username: "alice", Role: domain.RoleAdmin})
	}
	return c, rec
}

func TestBookHandler_List(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubBookService{
		listFn: func(ctx context.Context) ([]*domain.Book, error) {
			return []*domain.Book{
				{ID: 1, Title: "1984", Author: "George Orwell", CreatedAt: now, UpdatedAt: now},
				{ID: 2, Title: "The Hobbit", Author: "J.R.R. Tolkien", CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	}
	h := NewBookHandler(stub)

	c, rec := newBookTestContext(t, http.MethodGet, "/books", "", false)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["title"] != "1984" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBookHandler_Get_NotFound(t *testing.T) {
	stub := &stubBookService{
		getFn: func(ctx context.Context, id int64) (*domain.Book, error) {
			return nil, domain.ErrBookNotFound
		},
	}
	h := NewBookHandler(stub)

	c, rec := newBookTestContext(t, http.MethodGet, "/books/999", "", false)
	c.SetParamNames("id")
	c.SetParamValues("999")

	_ = h.Get(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBookHandler_Get_NonNumericID(t *testing.T) {
	stub := &stubBookService{
		getFn: func(ctx context.Context, id int64) (*domain.Book, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewBookHandler(stub)

	c, rec := newBookTestContext(t, http.MethodGet, "/books/abc", "", false)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	_ = h.Get(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBookHandler_Create_Success(t *testing.T) {
	stub := &stubBookService{
		createFn: func(ctx context.Context, actor string, input ports.CreateBookInput) (*domain.Book, error) {
			if actor != "alice" {
				t.Fatalf("unexpected actor: %s", actor)
			}
			if input.Title != "Dune" || input.Author != "Frank Herbert" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Book{ID: 3, Title: input.Title, Author: input.Author}, nil
		},
	}
	h := NewBookHandler(stub)

	c, rec := newBookTestContext(t, http.MethodPost, "/books", `{"title":"Dune","author":"Frank Herbert"}`, true)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(3) || resp["title"] != "Dune" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBookHandler_Create_MissingFields(t *testing.T) {
	stub := &stubBookService{
		createFn: func(ctx context.Context, actor string, input ports.CreateBookInput) (*domain.Book, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewBookHandler(stub)

	c, rec := newBookTestContext(t, http.MethodPost, "/books", `{"title":"No Author"}`, true)
	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookHandler_Update_Partial(t *testing.T) {
	stub := &stubBookService{
		updateFn: func(ctx context.Context, actor string, id int64, input ports.UpdateBookInput) (*domain.Book, error) {
			if id != 1 {
				t.Fatalf("unexpected id: %d", id)
			}
			if input.Title == nil || *input.Title != "Animal Farm" {
				t.Fatalf("expected title patch, got %+v", input)
			}
			if input.Author != nil {
				t.Fatalf("author must be nil for absent field")
			}
			return &domain.Book{ID: 1, Title: "Animal Farm", Author: "George Orwell"}, nil
		},
	}
	h := NewBookHandler(stub)

	c, rec := newBookTestContext(t, http.MethodPut, "/books/1", `{"title":"Animal Farm"}`, true)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBookHandler_Update_NotFound(t *testing.T) {
	stub := &stubBookService{
		updateFn: func(ctx context.Context, actor string, id int64, input ports.UpdateBookInput) (*domain.Book, error) {
			return nil, domain.ErrBookNotFound
		},
	}
	h := NewBookHandler(stub)

	c, rec := newBookTestContext(t, http.MethodPut, "/books/999", `{"title":"x"}`, true)
	c.SetParamNames("id")
	c.SetParamValues("999")

	_ = h.Update(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBookHandler_Delete_ReturnsRemovedBook(t *testing.T) {
	stub := &stubBookService{
		deleteFn: func(ctx context.Context, actor string, id int64) (*domain.Book, error) {
			return &domain.Book{ID: id, Title: "Doomed", Author: "Nobody"}, nil
		},
	}
	h := NewBookHandler(stub)

	c, rec := newBookTestContext(t, http.MethodDelete, "/books/2", "", true)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "Doomed" {
		t.Fatalf("expected removed book in body, got %s", rec.Body.String())
	}
}

func TestBookHandler_Mutation_NoPrincipal(t *testing.T) {
	stub := &stubBookService{
		createFn: func(ctx context.Context, actor string, input ports.CreateBookInput) (*domain.Book, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewBookHandler(stub)

	e := echo.New()
	c, rec := newBookTestContext(t, http.MethodPost, "/books", `{"title":"Dune","author":"Frank Herbert"}`, false)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
