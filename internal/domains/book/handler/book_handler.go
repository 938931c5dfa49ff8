package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/infrastructure/mirror"
	"catalog-backend/internal/shared/response"
)

// DefaultPageSize matches the catalog list page length.
const DefaultPageSize = 10

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create - POST /v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, status, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, &book.BookWriteResponse{
		Book:   b.ToResponse(),
		Mirror: status,
	})
}

// GetBySlug - GET /v1/books/slug/:slug
func (h *BookHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	b, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// GetAll - GET /v1/books?limit=10&offset=0&search=&author_id=&category_id=
func (h *BookHandler) GetAll(c *gin.Context) {
	limit := DefaultPageSize
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	offset := 0
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	filter := book.BookFilter{
		Limit:  limit,
		Offset: offset,
		Search: c.Query("search"),
	}

	if authorStr := c.Query("author_id"); authorStr != "" {
		id, err := uuid.Parse(authorStr)
		if err != nil {
			response.BadRequest(c, "Invalid author_id format")
			return
		}
		filter.AuthorID = &id
	}
	if categoryStr := c.Query("category_id"); categoryStr != "" {
		id, err := uuid.Parse(categoryStr)
		if err != nil {
			response.BadRequest(c, "Invalid category_id format")
			return
		}
		filter.CategoryID = &id
	}

	books, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	bookResponses := make([]book.BookResponse, len(books))
	for i, b := range books {
		bookResponses[i] = *b.ToResponse()
	}

	totalPages := (int(total) + filter.Limit - 1) / filter.Limit
	currentPage := (filter.Offset / filter.Limit) + 1

	response.SuccessWithMeta(c, http.StatusOK, bookResponses, &response.Meta{
		CurrentPage: currentPage,
		PageSize:    filter.Limit,
		TotalItems:  total,
		TotalPages:  totalPages,
	})
}

// Update - PUT /v1/books/slug/:slug
func (h *BookHandler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var req book.UpdateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, status, err := h.service.Update(c.Request.Context(), slug, &req)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, &book.BookWriteResponse{
		Book:   b.ToResponse(),
		Mirror: status,
	})
}

// Delete - DELETE /v1/books/slug/:slug
func (h *BookHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.service.Delete(c.Request.Context(), slug); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// ListMirror - GET /v1/books/mirror
func (h *BookHandler) ListMirror(c *gin.Context) {
	docs, err := h.service.ListMirror(c.Request.Context())
	if err != nil {
		if errors.Is(err, mirror.ErrDisabled) {
			response.ServiceUnavailable(c, "document store mirror is disabled")
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, docs)
}
