package router

import (
	"github.com/VinaySonwane/note-App/internal/application"
	"github.com/VinaySonwane/note-App/internal/container"
	pginfra "github.com/VinaySonwane/note-App/internal/infrastructure/postgres"
	handlers "github.com/VinaySonwane/note-App/internal/interface/http"
	"github.com/VinaySonwane/note-App/internal/router/modules"
)

func buildAuthService() *application.AuthService {
	cfg := container.GetConfig()
	users := pginfra.NewUserRepository(container.GetPGPool())
	otp := application.NewOTPEngine(users, cfg.OTPTTL)

	return application.NewAuthService(
		users,
		otp,
		container.GetJWT(),
		container.GetNotifier(),
		container.GetIdentity(),
		container.GetRabbitPub(),
		container.GetLogger(),
	)
}

func buildNoteService() *application.NoteService {
	cfg := container.GetConfig()
	notes := pginfra.NewNoteRepository(container.GetPGPool())
	return application.NewNoteService(notes, container.GetLogger(), container.GetES(), cfg.ESNotesIndex)
}

// InitModules wires all application modules into the router registry. Called
// once during startup.
func InitModules(r *Registry) {
	authSvc := buildAuthService()
	noteSvc := buildNoteService()

	authHandler := handlers.NewAuthHandler(authSvc, container.GetLogger())
	noteHandler := handlers.NewNoteHandler(noteSvc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewNoteModule(noteHandler, authSvc))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
