package routes

import (
	"fmt"

	"entry-tracker-backend/internal/api/handlers"
	"entry-tracker-backend/internal/api/middleware"
	"entry-tracker-backend/internal/auth"
	"entry-tracker-backend/internal/config"
	"entry-tracker-backend/internal/repository"
	"entry-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies are the stores the router is built on
type Dependencies struct {
	Users     repository.UserRepositoryInterface
	Companies repository.CompanyRepositoryInterface
	Tasks     repository.EntryTaskRepositoryInterface
	Sessions  auth.SessionStore
	Database  handlers.Pinger
}

// SetupRoutes wires the Postgres-backed stores and returns the router together
// with the session manager, whose sweeper the caller runs
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *auth.SessionManager, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB: %w", err)
	}

	deps := Dependencies{
		Users:     repository.NewUserRepository(db),
		Companies: repository.NewCompanyRepository(db),
		Tasks:     repository.NewEntryTaskRepository(db),
		Database:  sqlDB,
	}

	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		deps.Sessions = auth.NewMemoryStore()
	default:
		deps.Sessions = repository.NewSessionRepository(db)
	}

	return NewRouter(deps, cfg)
}

// NewRouter configures all the routes for the application
func NewRouter(deps Dependencies, cfg *config.Config) (*gin.Engine, *auth.SessionManager, error) {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize auth
	authConfig := auth.NewAuthConfig(cfg)
	if err := authConfig.ValidateConfig(); err != nil {
		return nil, nil, fmt.Errorf("invalid auth config: %w", err)
	}
	hasher, err := auth.NewPasswordHasher(authConfig.HashIterations)
	if err != nil {
		return nil, nil, fmt.Errorf("create password hasher: %w", err)
	}
	sessionManager := auth.NewSessionManager(deps.Sessions, authConfig)
	authService := auth.NewAuthService(deps.Users, hasher, sessionManager, validator)
	authHandler := auth.NewAuthHandler(authService, authConfig)
	sessionMiddleware := auth.NewSessionMiddleware(authService, authConfig)

	// Initialize services
	guard := service.NewOwnershipGuard(deps.Companies, deps.Tasks)
	companyService := service.NewCompanyService(deps.Companies, deps.Tasks, guard, validator)
	taskService := service.NewTaskService(deps.Tasks, guard, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Database, Version)
	companyHandler := handlers.NewCompanyHandler(companyService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.GET("/me", sessionMiddleware.RequireSession(), authHandler.Me)
	}

	// Everything below requires a session
	protected := v1.Group("", sessionMiddleware.RequireSession())

	companies := protected.Group("/companies")
	{
		companies.GET("", companyHandler.ListCompanies)
		companies.POST("", companyHandler.CreateCompany)
		companies.GET("/:id", companyHandler.GetCompany)
		companies.DELETE("/:id", companyHandler.DeleteCompany)
		companies.GET("/:id/tasks", taskHandler.ListTasks)
		companies.POST("/:id/tasks", taskHandler.CreateTask)
	}

	tasks := protected.Group("/tasks")
	{
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, sessionManager, nil
}
