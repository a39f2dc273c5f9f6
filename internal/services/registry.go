package services

import (
	"jobboard_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	TokenService       TokenService
	AuthService        AuthService
	CompanyService     CompanyService
	JobService         JobService
	ApplicationService ApplicationService
	ProfileService     ProfileService
	DashboardService   DashboardService
	EmailProvider      email.Provider
}
