package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/VinaySonwane/note-App/internal/application"
	"github.com/VinaySonwane/note-App/internal/domain/entity"
	"github.com/VinaySonwane/note-App/internal/interface/middleware"
	"github.com/VinaySonwane/note-App/pkg/response"
	"github.com/VinaySonwane/note-App/pkg/validation"
)

// NoteHandler exposes the protected note endpoints. Every handler expects
// the auth middleware to have resolved the acting user already.
type NoteHandler struct {
	Svc    *application.NoteService
	Logger *logrus.Logger
}

func NewNoteHandler(svc *application.NoteService, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{Svc: svc, Logger: logger}
}

type createNoteRequest struct {
	Content string `json:"content" binding:"required,min=1,max=10000"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteResponse(n *entity.Note) noteResponse {
	return noteResponse{ID: n.ID, Content: n.Content, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt}
}

// List GET /api/notes
func (h *NoteHandler) List(c *gin.Context) {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "not authorized", nil)
		return
	}

	notes, err := h.Svc.List(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("list notes failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}

	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	response.Success(c, http.StatusOK, out, "notes")
}

// Create POST /api/notes
func (h *NoteHandler) Create(c *gin.Context) {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "not authorized", nil)
		return
	}

	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "content is required", validation.ToDetails(err))
		return
	}

	n, err := h.Svc.Create(c.Request.Context(), u.ID, req.Content)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("create note failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, toNoteResponse(n), "note created")
}

// Delete DELETE /api/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "not authorized", nil)
		return
	}

	switch err := h.Svc.Delete(c.Request.Context(), u.ID, c.Param("id")); {
	case err == nil:
		response.Success[any](c, http.StatusOK, nil, "note removed")
	case errors.Is(err, application.ErrNoteNotFound):
		response.Error[any](c, http.StatusNotFound, "note not found", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Error[any](c, http.StatusUnauthorized, "not authorized", nil)
	default:
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("delete note failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
	}
}

// Search GET /api/notes/search?q=...&size=...
func (h *NoteHandler) Search(c *gin.Context) {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "not authorized", nil)
		return
	}

	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.Search(c.Request.Context(), u.ID, q, size)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Warn("note search failed")
		response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}
