package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cleanfood/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/check", handler.CheckIngredients)
		}

		guide := v1.Group("/guide")
		{
			guide.GET("", handler.GetGuide)
			guide.GET("/lookup", handler.LookupGuide)
		}
	}

	return router
}
