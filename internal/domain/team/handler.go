package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prodboard/internal/pkg/response"
	"prodboard/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	member, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", err.Error())
		case errors.Is(err, ErrInvalidRole):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c, "failed to create team member")
		}
		return
	}
	response.Created(c, member)
}

func (h *Handler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, "failed to list team members")
		return
	}
	response.OK(c, members)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}
	member, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "team member not found")
		return
	}
	response.OK(c, member)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	member, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			response.NotFound(c, "team member not found")
		case errors.Is(err, ErrInvalidRole):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c, "failed to update team member")
		}
		return
	}
	response.OK(c, member)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(c, "team member not found")
			return
		}
		response.Internal(c, "failed to delete team member")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
