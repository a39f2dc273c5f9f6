package handlers

import (
	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
	jwtManager       *auth.JWTManager
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService, jwtManager *auth.JWTManager) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
		jwtManager:       jwtManager,
	}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(h.jwtManager))
	{
		dashboard.GET("/jobseeker", middleware.RequireRoles(models.UserRoleJobSeeker), h.JobSeeker)
		dashboard.GET("/employer", middleware.RequireRoles(models.UserRoleEmployer), h.Employer)
	}
}

func (h *DashboardHandler) JobSeeker(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.JobSeekerDashboard(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Dashboard data", dashboard)
}

func (h *DashboardHandler) Employer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.EmployerDashboard(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Dashboard data", dashboard)
}
