package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// Create - POST /v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, category.ToHTTPStatus(err), category.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, cat.ToResponse())
}

// GetBySlug - GET /v1/categories/slug/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	cat, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, cat.ToResponse())
}

// GetAll - GET /v1/categories?limit=20&offset=0
func (h *CategoryHandler) GetAll(c *gin.Context) {
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

	categories, total, err := h.service.GetAll(c.Request.Context(), category.CategoryFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	categoryResponses := make([]category.CategoryResponse, len(categories))
	for i, cat := range categories {
		categoryResponses[i] = *cat.ToResponse()
	}

	totalPages := (int(total) + limit - 1) / limit

	response.SuccessWithMeta(c, http.StatusOK, categoryResponses, &response.Meta{
		CurrentPage: (offset / limit) + 1,
		PageSize:    limit,
		TotalItems:  total,
		TotalPages:  totalPages,
	})
}

// Delete - DELETE /v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, nil)
}
