package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/domains/review"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
)

type ReviewHandler struct {
	service review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// Create - POST /v1/books/slug/:slug/reviews (authenticated)
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req review.CreateReviewRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slug := c.Param("slug")
	rev, redirect, err := h.service.Create(c.Request.Context(), userID, slug, &req)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, review.ErrAlreadyReviewed) {
			// The client still gets sent back to the book page
			response.ErrorWithDetails(c, review.ToHTTPStatus(err), review.ToErrorCode(err), err.Error(),
				gin.H{"redirect": "/api/v1/books/slug/" + slug})
			return
		}
		response.ErrorResponse(c, review.ToHTTPStatus(err), review.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, &review.CreateReviewResult{
		Review:   rev.ToResponse(),
		Redirect: redirect,
	})
}

// GetByBook - GET /v1/books/slug/:slug/reviews
func (h *ReviewHandler) GetByBook(c *gin.Context) {
	reviews, err := h.service.GetByBookSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	reviewResponses := make([]review.ReviewResponse, len(reviews))
	for i, rev := range reviews {
		reviewResponses[i] = *rev.ToResponse()
	}

	response.Success(c, http.StatusOK, reviewResponses)
}
