package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/attendly/attendly/internal/app/controllers"
	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/models/dto"
	"github.com/attendly/attendly/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	userController *controllers.UserController,
	attendanceController *controllers.AttendanceController,
	insightController *controllers.InsightController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", authController.Profile)
		authenticated.GET("/dashboard", dashboardController.Dashboard)

		// Admin-only user management
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			users.GET("", userController.ListUsers)
			users.POST("", userController.SaveUser)
			users.GET("/export", userController.ExportUsers)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		// Teacher-only course and marking routes
		courses := authenticated.Group("/courses")
		courses.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			courses.GET("", attendanceController.ListCourses)
			courses.GET("/:id/roster", attendanceController.Roster)
			courses.POST("/:id/attendance", attendanceController.MarkAttendance)
		}

		// Student-only attendance views
		attendance := authenticated.Group("/attendance")
		attendance.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			attendance.GET("", attendanceController.ListAttendance)
			attendance.GET("/summary", attendanceController.AttendanceSummary)
		}

		// Insight routes are open to any authenticated account
		authenticated.POST("/insights", insightController.Insights)
		authenticated.POST("/chat", insightController.Chat)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
