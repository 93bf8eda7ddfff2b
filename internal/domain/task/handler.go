package task

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prodboard/internal/domain/project"
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
	var req CreateTaskRequest
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
		switch {
		case errors.Is(err, project.ErrProjectNotFound):
			response.NotFound(c, "project not found")
		case errors.Is(err, ErrInvalidPriority):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c, "failed to create task")
		}
		return
	}
	response.Created(c, created)
}

func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid project_id")
			return
		}
		filter.ProjectID = &id
	}
	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid assignee_id")
			return
		}
		filter.AssigneeID = &id
	}
	if raw := c.Query("status"); raw != "" {
		s := Status(raw)
		filter.Status = &s
	}

	tasks, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Internal(c, "failed to list tasks")
		return
	}
	response.OK(c, tasks)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "task not found")
		return
	}
	response.OK(c, found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}
	var req UpdateTaskRequest
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
		case errors.Is(err, ErrTaskNotFound):
			response.NotFound(c, "task not found")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidPriority):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c, "failed to update task")
		}
		return
	}
	response.OK(c, updated)
}

func (h *Handler) ToggleComplete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}

	toggled, err := h.service.ToggleComplete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrTaskNotFound):
			response.NotFound(c, "task not found")
		case errors.Is(err, ErrToggleInFlight):
			response.Error(c, http.StatusConflict, "TOGGLE_IN_FLIGHT", err.Error())
		default:
			response.Internal(c, "failed to toggle task")
		}
		return
	}
	response.OK(c, toggled)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.NotFound(c, "task not found")
			return
		}
		response.Internal(c, "failed to delete task")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
