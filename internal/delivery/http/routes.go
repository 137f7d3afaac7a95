package http

import (
	"github.com/gin-gonic/gin"
	"github.com/renvare/backend/config"
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
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Liveness/version endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/version", handler.GetVersion)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", handler.Classify)
		v1.POST("/classify-batch", handler.ClassifyBatch)

		products := v1.Group("/products")
		{
			products.POST("/search", handler.SearchProducts)
		}
	}

	return router
}
