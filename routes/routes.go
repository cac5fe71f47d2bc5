package routes

import (
	"net/http"
	"time"

	"praxia/handlers"
	"praxia/middleware"
	"praxia/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware(hb.PrimaryResolver))
		api.GET("/me", hb.User.GetProfileHandler)
		api.DELETE("/revoke", hb.User.RevokeAuthTokenHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminRequired(hb.UserRepo))
		admin.GET("", hb.User.ListUsersHandler)
	}
}

// RegisterAppointmentRoutes sets up the slot subsystem endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.AuthMiddleware(hb.PrimaryResolver))
		api.GET("/slots", hb.Appointment.ListSlotsHandler)
		api.GET("/availability", hb.Appointment.AvailabilityHandler)
		api.POST("/reserve", hb.Appointment.ReserveSlotHandler)

		// Privileged operations; the service re-checks the role, the
		// middleware keeps unauthorized traffic off the handlers.
		admin := api.Group("")
		admin.Use(middleware.AdminRequired(hb.UserRepo))
		admin.POST("/enable", hb.Appointment.EnableSlotsHandler)
		admin.POST("/block", hb.Appointment.BlockSlotHandler)
		admin.GET("/overview/:date", hb.Appointment.DayOverviewHandler)
	}
}

// RegisterBoardRoutes sets up the social board endpoints.
func RegisterBoardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/board")
	{
		api.Use(middleware.AuthMiddleware(hb.PrimaryResolver))
		api.GET("/posts", hb.Board.ListPostsHandler)
		api.POST("/posts", hb.Board.CreatePostHandler)
		api.DELETE("/posts/:id", hb.Board.DeletePostHandler)
	}
}

// RegisterPublicationRoutes sets up the authoring endpoints.
func RegisterPublicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/publications")
	{
		api.Use(middleware.AuthMiddleware(hb.PrimaryResolver))
		api.POST("", hb.Publication.CreatePublicationHandler)
		api.GET("", hb.Publication.ListPublicationsHandler)
		api.GET("/:id", hb.Publication.GetPublicationHandler)
		api.PATCH("/:id", hb.Publication.UpdatePublicationHandler)
		api.PUT("/:id/sections", hb.Publication.UpsertSectionHandler)
		api.DELETE("/:id/sections/:sectionID", hb.Publication.RemoveSectionHandler)
		api.POST("/:id/references", hb.Publication.AddReferenceHandler)
		api.DELETE("/:id/references/:refID", hb.Publication.RemoveReferenceHandler)
		api.POST("/:id/finalize", hb.Publication.FinalizePublicationHandler)
		api.POST("/:id/draft-section", hb.Publication.DraftSectionHandler)
		api.GET("/:id/export", hb.Publication.ExportPublicationHandler)
	}
}

// RegisterEducationRoutes sets up the classroom portal endpoints. These
// authenticate through the Firebase provider.
func RegisterEducationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/education")
	{
		api.Use(middleware.AuthMiddleware(hb.FirebaseResolver))
		api.GET("/courses", hb.Education.ListCoursesHandler)
		api.GET("/courses/:id/materials", hb.Education.ListMaterialsHandler)
		api.GET("/courses/:id/sessions", hb.Education.ListSessionsHandler)
		api.GET("/courses/:id/chat", hb.Education.PollChatMessagesHandler)
		api.POST("/courses/:id/chat", hb.Education.PostChatMessageHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminRequired(hb.UserRepo))
		admin.POST("/courses", hb.Education.CreateCourseHandler)
		admin.POST("/courses/:id/materials", hb.Education.AddMaterialHandler)
		admin.POST("/courses/:id/sessions", hb.Education.ScheduleSessionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterBoardRoutes(r, hb)
	RegisterPublicationRoutes(r, hb)
	RegisterEducationRoutes(r, hb)
	RegisterHealthRoute(r)
}
