package calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidKind), errors.Is(err, ErrInvalidRange):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c, "failed to create event")
		}
		return
	}
	response.Created(c, created)
}

// List returns events overlapping ?from=...&to=... (RFC 3339). Defaults
// to the current month when the range is omitted.
func (h *Handler) List(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid from")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid to")
			return
		}
		to = parsed
	}
	var projectID *int64
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid project_id")
			return
		}
		projectID = &id
	}

	events, err := h.service.ListRange(c.Request.Context(), from, to, projectID)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Internal(c, "failed to list events")
		return
	}
	response.OK(c, events)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "event not found")
		return
	}
	response.OK(c, found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	var req UpdateEventRequest
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
		case errors.Is(err, ErrEventNotFound):
			response.NotFound(c, "event not found")
		case errors.Is(err, ErrInvalidKind), errors.Is(err, ErrInvalidRange):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c, "failed to update event")
		}
		return
	}
	response.OK(c, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.NotFound(c, "event not found")
			return
		}
		response.Internal(c, "failed to delete event")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
