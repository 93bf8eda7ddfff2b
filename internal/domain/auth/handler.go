package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prodboard/internal/pkg/response"
	"prodboard/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	token, member, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		response.Internal(c, "login failed")
		return
	}

	response.OK(c, gin.H{
		"token": token,
		"user":  member,
	})
}

func (h *Handler) Me(c *gin.Context) {
	member, err := h.service.Me(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.NotFound(c, "member not found")
		return
	}
	response.OK(c, member)
}
