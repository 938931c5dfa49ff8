package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/user"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Register - POST /v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, &user.AuthResponse{
		User:        u.ToResponse(),
		AccessToken: token,
	})
}

// Login - POST /v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, &user.AuthResponse{
		User:        u.ToResponse(),
		AccessToken: token,
	})
}

// Me - GET /v1/users/me (authenticated)
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, u.ToResponse())
}
