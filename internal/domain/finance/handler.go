package finance

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
	var req CreateRecordRequest
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
		case errors.Is(err, ErrInvalidKind), errors.Is(err, ErrInvalidAmount):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c, "failed to create record")
		}
		return
	}
	response.Created(c, created)
}

func (h *Handler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	records, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrInvalidKind) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Internal(c, "failed to list records")
		return
	}
	response.OK(c, records)
}

func (h *Handler) Summary(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	summary, err := h.service.Summarize(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrInvalidKind) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Internal(c, "failed to build summary")
		return
	}
	response.OK(c, summary)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid record id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			response.NotFound(c, "financial record not found")
			return
		}
		response.Internal(c, "failed to delete record")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

func parseFilter(c *gin.Context) (ListFilter, bool) {
	var filter ListFilter
	if raw := c.Query("kind"); raw != "" {
		k := Kind(raw)
		filter.Kind = &k
	}
	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid client_id")
			return filter, false
		}
		filter.ClientID = &id
	}
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid project_id")
			return filter, false
		}
		filter.ProjectID = &id
	}
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid from")
			return filter, false
		}
		filter.From = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid to")
			return filter, false
		}
		filter.To = &parsed
	}
	return filter, true
}
