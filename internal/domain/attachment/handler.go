package attachment

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"prodboard/internal/pkg/filekind"
	"prodboard/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Grouped returns every attachment partitioned by owner type.
func (h *Handler) Grouped(c *gin.Context) {
	grouped, err := h.service.Grouped(c.Request.Context())
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			response.Error(c, http.StatusBadGateway, "FETCH_FAILED", err.Error())
			return
		}
		response.Internal(c, "failed to load attachments")
		return
	}
	response.OK(c, grouped)
}

// View returns the unified, filtered attachment list.
func (h *Handler) View(c *gin.Context) {
	criteria := Criteria{
		Search:    c.Query("search"),
		OwnerType: c.Query("type"),
		Category:  filekind.Category(c.DefaultQuery("category", string(filekind.CategoryAll))),
	}
	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid client_id")
			return
		}
		criteria.ClientID = &id
	}
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid project_id")
			return
		}
		criteria.ProjectID = &id
	}

	unified, err := h.service.View(c.Request.Context(), criteria)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidOwnerType):
			response.BadRequest(c, err.Error())
		default:
			var fe *FetchError
			if errors.As(err, &fe) {
				response.Error(c, http.StatusBadGateway, "FETCH_FAILED", err.Error())
				return
			}
			response.Internal(c, "failed to build attachment view")
		}
		return
	}
	response.OK(c, gin.H{"items": unified, "total": len(unified)})
}

// ListByOwner serves the attachment panel of one client, project or task.
func (h *Handler) ListByOwner(c *gin.Context) {
	owner, ownerID, ok := h.ownerParams(c)
	if !ok {
		return
	}
	items, err := h.service.ListByOwner(c.Request.Context(), owner, ownerID)
	if err != nil {
		if errors.Is(err, ErrInvalidOwnerType) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Internal(c, "failed to list attachments")
		return
	}
	response.OK(c, items)
}

// Upload stores a multipart file against an owner.
func (h *Handler) Upload(c *gin.Context) {
	owner, ownerID, ok := h.ownerParams(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	var tags []string
	if raw := strings.TrimSpace(c.PostForm("tags")); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	created, err := h.service.Upload(
		c.Request.Context(),
		c.GetInt64("user_id"),
		owner, ownerID,
		fileHeader,
		c.PostForm("description"),
		tags,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrOwnerNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidOwnerType):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Internal(c, "failed to upload file")
		}
		return
	}
	response.Created(c, created)
}

// Delete removes one attachment. The caller must pass confirm=true,
// and any failure is reported with the underlying message intact.
func (h *Handler) Delete(c *gin.Context) {
	owner, ownerID, ok := h.ownerParams(c)
	if !ok {
		return
	}
	confirmed := c.Query("confirm") == "true"

	err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), owner, ownerID, c.Param("id"), confirmed)
	if err != nil {
		switch {
		case errors.Is(err, ErrConfirmRequired):
			response.Error(c, http.StatusBadRequest, "CONFIRM_REQUIRED", err.Error())
		case errors.Is(err, ErrDeleteInFlight):
			response.Error(c, http.StatusConflict, "DELETE_IN_FLIGHT", err.Error())
		case errors.Is(err, ErrAttachmentNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, ErrInvalidOwnerType):
			response.BadRequest(c, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", err.Error())
		}
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// Download streams the stored file.
func (h *Handler) Download(c *gin.Context) {
	owner, ownerID, ok := h.ownerParams(c)
	if !ok {
		return
	}
	a, path, err := h.service.Download(c.Request.Context(), owner, ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrAttachmentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	c.FileAttachment(path, a.FileName)
}

func (h *Handler) ownerParams(c *gin.Context) (OwnerType, int64, bool) {
	owner := OwnerType(c.Param("ownerType"))
	if !owner.Valid() {
		response.BadRequest(c, ErrInvalidOwnerType.Error())
		return "", 0, false
	}
	ownerID, err := strconv.ParseInt(c.Param("ownerID"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid owner id")
		return "", 0, false
	}
	return owner, ownerID, true
}
