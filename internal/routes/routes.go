package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/handlers"
	"dental-clinic-server/internal/middleware"
	"dental-clinic-server/internal/models"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	patientHandler := handlers.NewPatientHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db, cfg)
	odontogramHandler := handlers.NewOdontogramHandler(db)
	consultationHandler := handlers.NewConsultationHandler(db)
	fileHandler := handlers.NewFileHandler(db)
	chatHandler := handlers.NewChatHandler(db, cfg, log)
	statsHandler := handlers.NewStatsHandler(db, log)
	portalHandler := handlers.NewPortalHandler(db, cfg)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// User management
		userRoutes := private.Group("/users")
		{
			// Dentist list is needed by any booking form
			userRoutes.GET("/dentists", userHandler.GetDentists)

			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("", userHandler.GetUsers)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		staff := middleware.RoleAuthMiddleware(models.RoleDentist, models.RoleAdmin)

		// Patient chart routes (staff only)
		patientRoutes := private.Group("/patients")
		patientRoutes.Use(staff)
		{
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", patientHandler.DeletePatient)
		}

		// Appointment routes (dentist flow)
		appointmentRoutes := private.Group("/appointments")
		appointmentRoutes.Use(staff)
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/availability", appointmentHandler.GetAvailability)
			appointmentRoutes.GET("/calendar", appointmentHandler.GetCalendar)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/reschedule", appointmentHandler.RescheduleAppointment)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		// Odontogram routes (staff edit patient charts)
		odontogramRoutes := private.Group("/odontogram")
		odontogramRoutes.Use(staff)
		{
			odontogramRoutes.GET("/:patientId", odontogramHandler.GetOdontogram)
			odontogramRoutes.PUT("/:patientId/teeth/:tooth", odontogramHandler.UpdateTooth)
			odontogramRoutes.DELETE("/:patientId/teeth/:tooth", odontogramHandler.ClearTooth)
		}

		// Consultation routes (staff)
		consultationRoutes := private.Group("/consultations")
		consultationRoutes.Use(staff)
		{
			consultationRoutes.POST("", consultationHandler.CreateConsultation)
			consultationRoutes.GET("/patient/:patientId", consultationHandler.GetConsultationsForPatient)
			consultationRoutes.GET("/:id", consultationHandler.GetConsultationByID)
			consultationRoutes.PUT("/:id", consultationHandler.UpdateConsultation)
			consultationRoutes.DELETE("/:id", consultationHandler.DeleteConsultation)
		}

		// Patient file routes (staff)
		fileRoutes := private.Group("/files")
		fileRoutes.Use(staff)
		{
			fileRoutes.POST("/patient/:patientId", fileHandler.UploadFile)
			fileRoutes.GET("/patient/:patientId", fileHandler.ListFiles)
			fileRoutes.GET("/:fileId/download", fileHandler.DownloadFile)
			fileRoutes.DELETE("/:fileId", fileHandler.DeleteFile)
		}

		// AI assistant chat (any authenticated user)
		chatRoutes := private.Group("/chat")
		{
			chatRoutes.POST("", chatHandler.SendMessage)
			chatRoutes.GET("/history", chatHandler.GetHistory)
			chatRoutes.DELETE("/history", chatHandler.ClearHistory)
		}

		// Dashboard statistics (staff)
		statsRoutes := private.Group("/stats")
		statsRoutes.Use(staff)
		{
			statsRoutes.GET("/dashboard", statsHandler.GetDashboard)
		}

		// Patient portal (patients only; charts resolved from the account)
		portalRoutes := private.Group("/portal")
		portalRoutes.Use(middleware.RoleAuthMiddleware(models.RolePatient))
		{
			portalRoutes.GET("/chart", portalHandler.GetMyChart)
			portalRoutes.GET("/appointments", portalHandler.GetMyAppointments)
			portalRoutes.POST("/appointments", portalHandler.RequestAppointment)
			portalRoutes.PATCH("/appointments/:id/cancel", portalHandler.CancelAppointment)
			portalRoutes.GET("/availability", portalHandler.GetAvailability)
			portalRoutes.GET("/odontogram", portalHandler.GetMyOdontogram)
			portalRoutes.GET("/consultations", portalHandler.GetMyConsultations)
			portalRoutes.GET("/files", portalHandler.GetMyFiles)
			portalRoutes.GET("/files/:fileId/download", portalHandler.DownloadMyFile)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
