package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VinaySonwane/note-App/internal/application"
	"github.com/VinaySonwane/note-App/internal/container"
	handlers "github.com/VinaySonwane/note-App/internal/interface/http"
	"github.com/VinaySonwane/note-App/internal/interface/middleware"
)

// NoteModule wires the protected note endpoints behind the bearer-token
// authorization middleware.
// GET/POST /api/notes, DELETE /api/notes/:id, GET /api/notes/search.
type NoteModule struct {
	Handler *handlers.NoteHandler
	Auth    *application.AuthService
}

func NewNoteModule(h *handlers.NoteHandler, auth *application.AuthService) *NoteModule {
	return &NoteModule{Handler: h, Auth: auth}
}

func (m *NoteModule) Register(rg *gin.RouterGroup) {
	notes := rg.Group("/notes")
	notes.Use(middleware.Auth(m.Auth))
	notes.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		notes.GET("", m.Handler.List)
		notes.POST("", m.Handler.Create)
		notes.GET("/search", m.Handler.Search)
		notes.DELETE("/:id", m.Handler.Delete)
	}
}
