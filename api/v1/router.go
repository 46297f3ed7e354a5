package v1

import (
	"github.com/civicfix-server/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes on the given group.
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", HealthCheck)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/admin/login", AdminLogin)
		authGroup.POST("/technician/login", TechnicianLogin)
		authGroup.POST("/citizen/login", CitizenLogin)
	}

	// Reads and citizen submissions are open; mutations require an admin token.
	issueGroup := router.Group("/issues")
	{
		issueGroup.GET("", ListIssues)
		issueGroup.POST("", CreateIssue)

		adminIssues := issueGroup.Group("")
		adminIssues.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			adminIssues.PATCH("/:id/status", UpdateIssueStatus)
			adminIssues.PATCH("/:id/assign", AssignIssue)
			adminIssues.DELETE("/:id", DeleteIssue)
		}
	}

	techGroup := router.Group("/technicians")
	{
		techGroup.GET("", ListTechnicians)
		techGroup.POST("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), CreateTechnician)
	}

	router.GET("/team", GetTeam)

	maintenanceGroup := router.Group("/maintenance")
	maintenanceGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		maintenanceGroup.POST("/cleanup-technicians", CleanupTechnicians)
	}
}
