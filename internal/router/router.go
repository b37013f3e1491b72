package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/internal/handlers"
	"github.com/inkwell-dev/inkwell/internal/types"
)

type Handlers struct {
	Users    *handlers.UserHandler
	Teams    *handlers.TeamHandler
	Projects *handlers.ProjectHandler
	Notes    *handlers.NoteHandler
	Uploads  *handlers.UploadHandler
}

// NewRouter wires the route table. The identity middleware runs on every
// route; handlers enforce their own authentication and authorization.
func NewRouter(h Handlers, identity gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(identity)

	r.GET("/health", handlers.HealthCheck)

	user := r.Group("/user")
	{
		user.POST("/signup", h.Users.Signup)
		user.POST("/login", h.Users.Login)
		user.GET("/me", h.Users.Me)
	}

	team := r.Group("/team")
	{
		team.POST("", h.Teams.CreateTeam)
		team.GET("", h.Teams.ListMyTeams)
		team.DELETE("/:team_id", h.Teams.DeleteTeam)
		team.GET("/:team_id/users", h.Teams.ListTeamUsers)
		team.DELETE("/:team_id/leave", h.Teams.LeaveTeam)
		team.GET("/:team_id/projects", h.Projects.ListTeamProjects)
		team.POST("/:team_id/invite", h.Teams.CreateInvite)
	}

	invite := r.Group("/invite")
	{
		invite.POST("/accept", h.Teams.AcceptInvite)
		invite.DELETE("/:code", h.Teams.RevokeInvite)
	}

	project := r.Group("/project")
	{
		project.POST("", h.Projects.CreateProject)
		project.GET("/:project_id", h.Projects.GetProject)
		project.DELETE("/:project_id", h.Projects.DeleteProject)
		project.GET("/:project_id/notes", h.Notes.ListProjectNotes)
	}

	note := r.Group("/note")
	{
		note.POST("", h.Notes.CreateNote)
		note.GET("/:note_id", h.Notes.GetNote)
		note.DELETE("/:note_id", h.Notes.DeleteNote)
	}

	utils := r.Group("/utils")
	{
		utils.POST("/image/upload/user-thumbnail", h.Uploads.UploadUserThumbnail)
		utils.POST("/image/upload/team-thumbnail", h.Uploads.UploadTeamThumbnail)
		utils.POST("/image/upload/project-thumbnail", h.Uploads.UploadProjectThumbnail)
	}

	return r
}
