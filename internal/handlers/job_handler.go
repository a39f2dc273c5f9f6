package handlers

import (
	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
	jwtManager *auth.JWTManager
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, jwtManager *auth.JWTManager) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		jwtManager:  jwtManager,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		// Публичные маршруты
		jobs.GET("", h.List)
		jobs.GET("/company/:companyId", h.ListByCompany)

		authed := jobs.Group("")
		authed.Use(middleware.AuthMiddleware(h.jwtManager))
		{
			// Маршруты работодателя
			authed.POST("", middleware.RequireRoles(models.UserRoleEmployer), h.Create)
			authed.PUT("/:id", middleware.RequireRoles(models.UserRoleEmployer), h.Update)
			authed.DELETE("/:id", middleware.RequireRoles(models.UserRoleEmployer), h.Delete)

			// Избранное соискателя
			authed.GET("/saved", middleware.RequireRoles(models.UserRoleJobSeeker), h.ListSaved)
			authed.POST("/:id/save", middleware.RequireRoles(models.UserRoleJobSeeker), h.Save)
			authed.DELETE("/:id/save", middleware.RequireRoles(models.UserRoleJobSeeker), h.Unsave)
		}

		jobs.GET("/:id", h.GetByID)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Job created", job)
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Job found", job)
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.jobService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Jobs found", response)
}

func (h *JobHandler) ListByCompany(c *gin.Context) {
	jobs, err := h.jobService.ListByCompany(c.Param("companyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Jobs found", jobs)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Job deleted", nil)
}

func (h *JobHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.SaveJob(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Job saved", nil)
}

func (h *JobHandler) Unsave(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.UnsaveJob(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Job removed from saved", nil)
}

func (h *JobHandler) ListSaved(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	saved, err := h.jobService.ListSaved(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Saved jobs found", saved)
}
