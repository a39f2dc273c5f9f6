package handlers

import (
	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
	jwtManager     *auth.JWTManager
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService, jwtManager *auth.JWTManager) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
		jwtManager:     jwtManager,
	}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		// Публичные маршруты
		companies.GET("", h.List)

		// Маршруты работодателя
		authed := companies.Group("")
		authed.Use(middleware.AuthMiddleware(h.jwtManager))
		{
			authed.GET("/me", middleware.RequireRoles(models.UserRoleEmployer), h.ListMine)
			authed.POST("", middleware.RequireRoles(models.UserRoleEmployer), h.Create)
			authed.PUT("/:id", middleware.RequireRoles(models.UserRoleEmployer), h.Update)
			authed.DELETE("/:id", middleware.RequireRoles(models.UserRoleEmployer), h.Delete)
		}

		companies.GET("/:id", h.GetByID)
	}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Company created", company)
}

func (h *CompanyHandler) GetByID(c *gin.Context) {
	company, err := h.companyService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Company found", company)
}

func (h *CompanyHandler) List(c *gin.Context) {
	var query dto.CompanyListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	companies, total, err := h.companyService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Companies found", gin.H{
		"companies": companies,
		"total":     total,
	})
}

func (h *CompanyHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListByOwner(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Companies found", companies)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Company updated", company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Company deleted", nil)
}
