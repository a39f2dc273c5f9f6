package handlers

import (
	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	jwtManager         *auth.JWTManager
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, jwtManager *auth.JWTManager) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		jwtManager:         jwtManager,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Подача отклика доступна и через /jobs/:jobId/apply
	rg.POST("/jobs/:id/apply",
		middleware.AuthMiddleware(h.jwtManager),
		middleware.RequireRoles(models.UserRoleJobSeeker),
		h.ApplyByJobParam,
	)

	applications := rg.Group("/applications")
	applications.Use(middleware.AuthMiddleware(h.jwtManager))
	{
		// Маршруты соискателя
		applications.POST("/:id", middleware.RequireRoles(models.UserRoleJobSeeker), h.Apply)
		applications.GET("/me", middleware.RequireRoles(models.UserRoleJobSeeker), h.ListMine)
		applications.PUT("/:id/withdraw", middleware.RequireRoles(models.UserRoleJobSeeker), h.Withdraw)
		applications.DELETE("/:id", middleware.RequireRoles(models.UserRoleJobSeeker), h.Delete)

		// Маршруты работодателя
		applications.GET("/job/:jobId", middleware.RequireRoles(models.UserRoleEmployer), h.ListByJob)
		applications.PUT("/:id/status", middleware.RequireRoles(models.UserRoleEmployer), h.UpdateStatus)

		// Общий маршрут: отклик видят кандидат и автор вакансии
		applications.GET("/:id", h.GetByID)
	}
}

// Apply - POST /applications/:id, где :id - это ID вакансии
func (h *ApplicationHandler) Apply(c *gin.Context) {
	h.apply(c, c.Param("id"))
}

// ApplyByJobParam - POST /jobs/:id/apply
func (h *ApplicationHandler) ApplyByJobParam(c *gin.Context) {
	h.apply(c, c.Param("id"))
}

func (h *ApplicationHandler) apply(c *gin.Context, jobID string) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(userID, jobID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Application submitted", application)
}

func (h *ApplicationHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	application, err := h.applicationService.GetByID(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Application found", application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByApplicant(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Applications found", applications)
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByJob(c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Applications found", applications)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Param("id"), userID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Application status updated", application)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	application, err := h.applicationService.Withdraw(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Application withdrawn", application)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Delete(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Application deleted", nil)
}
