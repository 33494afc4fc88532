package api

import (
	"net/http"

	analyticsDelivery "jobtrail-backend/internal/analytics/delivery"
	applicationDelivery "jobtrail-backend/internal/application/delivery"
	chatDelivery "jobtrail-backend/internal/chat/delivery"
	jobpostDelivery "jobtrail-backend/internal/jobpost/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authMiddleware gin.HandlerFunc,
	applicationHandler *applicationDelivery.ApplicationHandler,
	analyticsHandler *analyticsDelivery.AnalyticsHandler,
	jobPostHandler *jobpostDelivery.JobPostHandler,
	chatHandler *chatDelivery.ChatHandler,
) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Application routes (protected)
		applications := api.Group("/applications")
		applications.Use(authMiddleware)
		{
			applications.GET("", applicationHandler.List)
			applications.POST("", applicationHandler.Create)
			applications.PUT("/:id", applicationHandler.Update)
			applications.DELETE("/:id", applicationHandler.Delete)
		}

		// Analytics (protected)
		api.GET("/analytics", authMiddleware, analyticsHandler.Get)

		// URL extraction (protected)
		api.POST("/parse-url", authMiddleware, jobPostHandler.ParseURL)

		// Chat assistant (protected)
		api.POST("/chat", authMiddleware, chatHandler.Chat)
	}
}

// methodNotAllowed is installed via gin's HandleMethodNotAllowed so
// unsupported verbs on known paths answer 405 instead of 404.
func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
