package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/infrastructure/mirror"
)

// stubBookService serves a fixed set of books.
type stubBookService struct {
	books      []book.Book
	mirrorDocs []mirror.BookDocument
	mirrorErr  error
}

func (s *stubBookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, book.MirrorStatus, error) {
	return &s.books[0], book.MirrorSynced, nil
}

func (s *stubBookService) Update(ctx context.Context, slug string, req *book.UpdateBookRequest) (*book.Book, book.MirrorStatus, error) {
	return &s.books[0], book.MirrorSynced, nil
}

func (s *stubBookService) Delete(ctx context.Context, slug string) error { return nil }

func (s *stubBookService) GetBySlug(ctx context.Context, slug string) (*book.Book, error) {
	for i := range s.books {
		if s.books[i].Slug == slug {
			return &s.books[i], nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (s *stubBookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (s *stubBookService) GetAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	end := filter.Offset + filter.Limit
	if end > len(s.books) {
		end = len(s.books)
	}
	start := filter.Offset
	if start > len(s.books) {
		start = len(s.books)
	}
	return s.books[start:end], int64(len(s.books)), nil
}

func (s *stubBookService) ListMirror(ctx context.Context) ([]mirror.BookDocument, error) {
	return s.mirrorDocs, s.mirrorErr
}

func makeBooks(n int) []book.Book {
	books := make([]book.Book, n)
	for i := range books {
		books[i] = book.Book{
			ID:              uuid.New(),
			Title:           fmt.Sprintf("Book %02d", i+1),
			ISBN:            fmt.Sprintf("978-0-00-%06d-0", i+1),
			Slug:            fmt.Sprintf("book-%02d", i+1),
			PublicationDate: time.Date(2000+i, 1, 1, 0, 0, 0, 0, time.UTC),
			AuthorID:        uuid.New(),
			AuthorName:      "Gabriel García Márquez",
		}
	}
	return books
}

func bookTestRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)
	router := gin.New()
	router.GET("/books", h.GetAll)
	router.GET("/books/mirror", h.ListMirror)
	router.GET("/books/slug/:slug", h.GetBySlug)
	return router
}

func TestGetAllDefaultsToTenPerPage(t *testing.T) {
	router := bookTestRouter(&stubBookService{books: makeBooks(15)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			Title string `json:"title"`
		} `json:"data"`
		Meta struct {
			CurrentPage int   `json:"current_page"`
			PageSize    int   `json:"page_size"`
			TotalItems  int64 `json:"total_items"`
			TotalPages  int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Len(t, body.Data, 10)
	// Rows past the page boundary must not leak into the first page
	assert.NotContains(t, w.Body.String(), "Book 15")
	assert.Equal(t, 1, body.Meta.CurrentPage)
	assert.Equal(t, 10, body.Meta.PageSize)
	assert.Equal(t, int64(15), body.Meta.TotalItems)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestGetAllSecondPage(t *testing.T) {
	router := bookTestRouter(&stubBookService{books: makeBooks(15)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books?offset=10", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			CurrentPage int `json:"current_page"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 5)
	assert.Equal(t, 2, body.Meta.CurrentPage)
}

func TestGetAllRejectsBadAuthorID(t *testing.T) {
	router := bookTestRouter(&stubBookService{books: makeBooks(1)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books?author_id=nope", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBySlugFound(t *testing.T) {
	router := bookTestRouter(&stubBookService{books: makeBooks(3)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/slug/book-02", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "Book 02"))
	assert.True(t, strings.Contains(w.Body.String(), "Gabriel García Márquez"))
}

func TestGetBySlugNotFound(t *testing.T) {
	router := bookTestRouter(&stubBookService{books: makeBooks(3)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/slug/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMirrorDisabledReturns503(t *testing.T) {
	router := bookTestRouter(&stubBookService{
		books:     makeBooks(1),
		mirrorErr: mirror.ErrDisabled,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/mirror", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestListMirrorReturnsDocuments(t *testing.T) {
	router := bookTestRouter(&stubBookService{
		books: makeBooks(1),
		mirrorDocs: []mirror.BookDocument{
			{Title: "Rayuela", Author: "Julio Cortázar", PublicationDate: "1963-06-28", Slug: "rayuela"},
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/mirror", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rayuela")
}
