package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create - POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, a.ToResponse())
}

// GetBySlug - GET /v1/authors/slug/:slug
func (h *AuthorHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	a, bookCount, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, a.ToDetailResponse(bookCount))
}

// GetAll - GET /v1/authors?limit=20&offset=0&search=
func (h *AuthorHandler) GetAll(c *gin.Context) {
	limit := 20
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

	filter := author.AuthorFilter{
		Limit:  limit,
		Offset: offset,
		Search: c.Query("search"),
	}

	authors, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	authorResponses := make([]author.AuthorResponse, len(authors))
	for i, a := range authors {
		authorResponses[i] = *a.ToResponse()
	}

	totalPages := (int(total) + filter.Limit - 1) / filter.Limit
	currentPage := (filter.Offset / filter.Limit) + 1

	response.SuccessWithMeta(c, http.StatusOK, authorResponses, &response.Meta{
		CurrentPage: currentPage,
		PageSize:    filter.Limit,
		TotalItems:  total,
		TotalPages:  totalPages,
	})
}

// Delete - DELETE /v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, nil)
}
