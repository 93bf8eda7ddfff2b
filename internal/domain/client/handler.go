package client

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
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Internal(c, "failed to create client")
		return
	}
	response.Created(c, created)
}

func (h *Handler) List(c *gin.Context) {
	var status *Status
	if raw := c.Query("status"); raw != "" {
		s := Status(raw)
		status = &s
	}

	clients, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Internal(c, "failed to list clients")
		return
	}
	response.OK(c, clients)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid client id")
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "client not found")
		return
	}
	response.OK(c, found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid client id")
		return
	}
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrClientNotFound):
			response.NotFound(c, "client not found")
		case errors.Is(err, ErrInvalidStatus):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c, "failed to update client")
		}
		return
	}
	response.OK(c, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid client id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrClientNotFound) {
			response.NotFound(c, "client not found")
			return
		}
		response.Internal(c, "failed to delete client")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
