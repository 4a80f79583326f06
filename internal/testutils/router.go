package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/api/routes"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/linskybing/tracker-go/internal/repository"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// App is a fully wired service stack on top of a test database.
type App struct {
	Router   *gin.Engine
	Services *application.Services
	Hub      *notify.Hub
	Mailer   *RecordingMailer
}

func SetupRouter(gdb *gorm.DB, opts application.Options) *App {
	gin.SetMode(gin.TestMode)

	hub := notify.NewHub(64)
	mailer := &RecordingMailer{}
	if opts.Notifier == nil {
		opts.Notifier = hub
	}
	if opts.Mailer == nil {
		opts.Mailer = mailer
	}

	svc := application.New(repository.NewRepositories(gdb), opts)
	return &App{
		Router:   routes.NewRouter(zerolog.Nop(), svc, hub),
		Services: svc,
		Hub:      hub,
		Mailer:   mailer,
	}
}
