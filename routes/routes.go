// routes.go - Assembles the router from handlers and middleware

package routes

import (
	"go-health-backend/handlers"
	"go-health-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter registers all routes on a new Gin engine.
func SetupRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default() // New Gin router with logger and recovery

	// CORS for the web/mobile frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Health check (no authentication required)
	r.GET("/connection", h.Connection)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register) // Public route: user registration
		auth.POST("/login", h.Login)       // Public route: user login
	}

	// Protected routes (require a valid bearer token)
	healthdata := r.Group("/healthdata")
	healthdata.Use(middleware.RequireAuth(h.DB)) // Apply JWT authentication middleware
	{
		healthdata.POST("/", h.CreateHealthData)       // Protected: log a measurement
		healthdata.GET("/", h.ListHealthData)          // Protected: list own measurements
		healthdata.PUT("/:id", h.UpdateHealthData)     // Protected: update own measurement
		healthdata.DELETE("/:id", h.DeleteHealthData)  // Protected: delete own measurement
	}

	insights := r.Group("/ai")
	insights.Use(middleware.RequireAuth(h.DB))
	{
		insights.POST("/", h.GenerateInsights) // Protected: generate AI insights
	}

	return r
}
