package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"
)

func Run() {
	// .env не обязателен, в проде переменные приходят из окружения
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB)

	maintenanceWorker := workers.NewMaintenanceWorker(gormDB, serviceContainer.TokenService)
	maintenanceWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	jwtManager := auth.NewJWTManager(
		cfg.JWT.AccessSecret,
		time.Duration(cfg.JWT.AccessTTLMin)*time.Minute,
	)

	serviceContainer := initializeServices(cfg, gormDB, jwtManager)
	appHandlers := initializeHandlers(serviceContainer, jwtManager)

	ginRouter := initializeGinRouter(cfg)
	routes.SetupRoutes(ginRouter, appHandlers)

	return ginRouter, serviceContainer
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, jwtManager *auth.JWTManager) *services.ServiceContainer {
	emailProvider := initializeEmailProvider(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	verificationTokenRepo := repositories.NewVerificationTokenRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	savedJobRepo := repositories.NewSavedJobRepository(gormDB)

	tokenService := services.NewTokenService(
		jwtManager,
		refreshTokenRepo,
		userRepo,
		time.Duration(cfg.JWT.RefreshTTLDay)*24*time.Hour,
	)
	authService := services.NewAuthService(userRepo, verificationTokenRepo, tokenService, emailProvider)
	companyService := services.NewCompanyService(companyRepo, jobRepo)
	jobService := services.NewJobService(jobRepo, companyRepo, savedJobRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	profileService := services.NewProfileService(profileRepo)
	dashboardService := services.NewDashboardService(profileRepo, applicationRepo, savedJobRepo, companyRepo, jobRepo)

	return &services.ServiceContainer{
		TokenService:       tokenService,
		AuthService:        authService,
		CompanyService:     companyService,
		JobService:         jobService,
		ApplicationService: applicationService,
		ProfileService:     profileService,
		DashboardService:   dashboardService,
		EmailProvider:      emailProvider,
	}
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	smtpConfig := &email.SMTPConfig{
		Host:            cfg.Email.SMTPHost,
		Port:            cfg.Email.SMTPPort,
		Username:        cfg.Email.SMTPUsername,
		Password:        cfg.Email.SMTPPassword,
		FromEmail:       cfg.Email.FromEmail,
		FromName:        cfg.Email.FromName,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}

	renderer, err := email.NewTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}

	provider, err := email.NewSMTPProvider(smtpConfig, renderer)
	if err != nil {
		logger.Warn("SMTP not configured, emails will be logged only", "error", err)
		return email.NewLogProvider()
	}

	logger.Info("SMTP email provider initialized", "host", smtpConfig.Host)
	return provider
}

func initializeHandlers(sc *services.ServiceContainer, jwtManager *auth.JWTManager) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, sc.AuthService, jwtManager),
		CompanyHandler:     handlers.NewCompanyHandler(baseHandler, sc.CompanyService, jwtManager),
		JobHandler:         handlers.NewJobHandler(baseHandler, sc.JobService, jwtManager),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, sc.ApplicationService, jwtManager),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, sc.ProfileService, jwtManager),
		DashboardHandler:   handlers.NewDashboardHandler(baseHandler, sc.DashboardService, jwtManager),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "prod" || cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	return router
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.VerificationToken{},
		&models.Profile{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
	)
}
