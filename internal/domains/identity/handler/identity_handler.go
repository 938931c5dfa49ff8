package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	identitydomain "catalog-backend/internal/domains/identity"
	"catalog-backend/internal/infrastructure/identity"
	"catalog-backend/internal/shared/response"
)

type IdentityHandler struct {
	service identitydomain.Service
}

func NewIdentityHandler(svc identitydomain.Service) *IdentityHandler {
	return &IdentityHandler{service: svc}
}

// TokenLogin - POST /v1/auth/token-login
//
// A missing token is the caller's fault (400), a rejected token is an
// auth failure (401), anything else is on us or the provider (500).
func (h *IdentityHandler) TokenLogin(c *gin.Context) {
	var req identitydomain.TokenLoginRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.TokenLogin(c.Request.Context(), &req)
	if err != nil {
		var validationErrs validation.Errors
		switch {
		case errors.As(err, &validationErrs):
			response.BadRequest(c, err.Error())
		case errors.Is(err, identity.ErrInvalidToken):
			response.Unauthorized(c, err.Error())
		default:
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
