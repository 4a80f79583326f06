package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/api/handlers"
	"github.com/linskybing/tracker-go/internal/api/middleware"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/metrics"
	"github.com/linskybing/tracker-go/internal/notify"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/tracker-go/docs"
)

// NewRouter builds the engine with the global middleware chain and every route.
func NewRouter(l zerolog.Logger, svc *application.Services, hub *notify.Hub) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recoverer(l))
	r.Use(middleware.RequestLogger(l))
	r.Use(middleware.Metrics())
	r.Use(middleware.DefaultCORS())

	RegisterRoutes(r, svc, hub)
	return r
}

func RegisterRoutes(r *gin.Engine, svc *application.Services, hub *notify.Hub) {
	h := handlers.New(svc, hub)
	limited := middleware.RateLimitByIP(config.RateLimitPerMinute, time.Minute)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws", middleware.WebSocketAuthMiddleware(svc.User), h.Broadcast.Serve)

	api := r.Group("/api")
	api.GET("/health", handlers.Health)
	api.POST("/register", limited, h.User.Register)
	api.POST("/login", limited, h.User.Login)
	api.POST("/logout", h.User.Logout)
	api.POST("/request-password-reset", limited, h.User.RequestPasswordReset)
	api.POST("/reset-password", limited, h.User.ResetPassword)

	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware(svc.User))
	{
		auth.GET("/profile", h.User.GetProfile)
		auth.PUT("/profile", h.User.UpdateProfile)

		projects := auth.Group("/projects")
		{
			projects.POST("", h.Project.CreateProject)
			projects.GET("", h.Project.GetProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
			projects.PUT("/:id", h.Project.UpdateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
			projects.GET("/:id/settings", h.Project.GetProjectByID)
			projects.PUT("/:id/settings", h.Project.UpdateProject)
			projects.GET("/:id/users", h.Project.ListMembers)
			projects.POST("/:id/users", h.Project.AddMember)
			projects.DELETE("/:id/users/:user_id", h.Project.RemoveMember)
			projects.GET("/:id/boards", h.Board.ListProjectBoards)
			projects.GET("/:id/activity", h.Activity.GetProjectActivity)
		}

		boards := auth.Group("/boards")
		{
			boards.POST("", h.Board.CreateBoard)
			boards.GET("/:id", h.Board.GetBoard)
			boards.PUT("/:id", h.Board.UpdateBoard)
			boards.DELETE("/:id", h.Board.DeleteBoard)
			boards.GET("/:id/columns", h.Board.ListColumns)
		}

		columns := auth.Group("/columns")
		{
			columns.POST("", h.Board.CreateColumn)
			columns.PUT("/:id", h.Board.UpdateColumn)
			columns.DELETE("/:id", h.Board.DeleteColumn)
		}

		tickets := auth.Group("/tickets")
		{
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.GET("", h.Ticket.ListTickets)
			tickets.GET("/:id", h.Ticket.GetTicket)
			tickets.PUT("/:id", h.Ticket.UpdateTicket)
			tickets.DELETE("/:id", h.Ticket.DeleteTicket)
			tickets.GET("/:id/history", h.Ticket.GetHistory)
			tickets.GET("/:id/comments", h.Comment.ListComments)
			tickets.POST("/:id/comments", h.Comment.CreateComment)
			tickets.GET("/:id/attachments", h.Attachment.ListAttachments)
			tickets.POST("/:id/attachments", h.Attachment.UploadAttachment)
		}

		auth.GET("/comments/:id", h.Comment.GetComment)
		auth.GET("/attachments/:id", h.Attachment.GetAttachmentURL)
		auth.DELETE("/attachments/:id", h.Attachment.DeleteAttachment)

		invitations := auth.Group("/invitations")
		{
			invitations.POST("", h.Invitation.CreateInvitation)
			invitations.GET("/:token", h.Invitation.AcceptInvitation)
			invitations.POST("/:token", h.Invitation.AcceptInvitation)
		}

		auth.GET("/activity", middleware.RequireRole(config.RoleAdmin), h.Activity.GetActivityLogs)
	}
}
