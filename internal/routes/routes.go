package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/handlers"
)

// SetupRoutes монтирует все группы маршрутов под /api.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		h.AuthHandler.RegisterRoutes(api)
		h.CompanyHandler.RegisterRoutes(api)
		h.JobHandler.RegisterRoutes(api)
		h.ApplicationHandler.RegisterRoutes(api)
		h.ProfileHandler.RegisterRoutes(api)
		h.DashboardHandler.RegisterRoutes(api)
	}
}
