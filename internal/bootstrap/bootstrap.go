package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/evren/schoolhub/internal/app/controllers"
	appMigrations "github.com/evren/schoolhub/internal/app/migrations"
	appRepos "github.com/evren/schoolhub/internal/app/repositories"
	appRoutes "github.com/evren/schoolhub/internal/app/routes"
	appServices "github.com/evren/schoolhub/internal/app/services"
	"github.com/evren/schoolhub/internal/config"
	"github.com/evren/schoolhub/internal/db"
	appMiddleware "github.com/evren/schoolhub/internal/middleware"
	pkgAuth "github.com/evren/schoolhub/internal/pkg/auth"
	"github.com/evren/schoolhub/internal/pkg/filestorage"
	"github.com/evren/schoolhub/internal/pkg/helpers"
	"github.com/evren/schoolhub/internal/pkg/logger"
	"github.com/evren/schoolhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService               *appServices.AuthService
	StaffService              *appServices.StaffService
	StudentService            *appServices.StudentService
	EventService              *appServices.EventService
	AchievementService        *appServices.AchievementService
	ProjectService            *appServices.ProjectService
	SalaryTemplateService     *appServices.SalaryTemplateService
	TransportFormService      *appServices.TransportFormService
	LeaveRequestService       *appServices.LeaveRequestService
	EnquiryService            *appServices.EnquiryService
	ResourceService           *appServices.ResourceService
	SupportTicketService      *appServices.SupportTicketService
	DisciplinaryActionService *appServices.DisciplinaryActionService

	AuthController               *appControllers.AuthController
	StaffController              *appControllers.StaffController
	StudentController            *appControllers.StudentController
	EventController              *appControllers.EventController
	AchievementController        *appControllers.AchievementController
	ProjectController            *appControllers.ProjectController
	SalaryTemplateController     *appControllers.SalaryTemplateController
	TransportFormController      *appControllers.TransportFormController
	LeaveRequestController       *appControllers.LeaveRequestController
	EnquiryController            *appControllers.EnquiryController
	ResourceController           *appControllers.ResourceController
	SupportTicketController      *appControllers.SupportTicketController
	DisciplinaryActionController *appControllers.DisciplinaryActionController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
	FileStorage    *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := strings.ToLower(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", logLevel).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create Default Data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Initialize File Storage
	// Configure baseURL to match the static file serving endpoint
	var err error
	baseUrl := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseUrl + "/uploads" // This must match the static file serving URL path
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StaffRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.EventService = appServices.NewEventService(
		deps.Repos.EventRepository,
		deps.Repos.EventParticipantRepository,
		deps.Repos.StudentRepository,
	)
	deps.AchievementService = appServices.NewAchievementService(
		deps.Repos.AchievementRepository,
		deps.Repos.StudentRepository,
	)
	deps.ProjectService = appServices.NewProjectService(
		deps.Repos.ProjectRepository,
		deps.Repos.ContributionRepository,
		deps.Repos.StudentRepository,
		deps.FileStorage,
	)
	deps.SalaryTemplateService = appServices.NewSalaryTemplateService(deps.Repos.SalaryTemplateRepository)
	deps.TransportFormService = appServices.NewTransportFormService(
		deps.Repos.TransportFormRepository,
		deps.Repos.StudentRepository,
	)
	deps.LeaveRequestService = appServices.NewLeaveRequestService(
		deps.Repos.LeaveRequestRepository,
		deps.Repos.StaffRepository,
	)
	deps.EnquiryService = appServices.NewEnquiryService(deps.Repos.EnquiryRepository)
	deps.ResourceService = appServices.NewResourceService(
		deps.Repos.ResourceRepository,
		deps.FileStorage,
	)
	deps.SupportTicketService = appServices.NewSupportTicketService(deps.Repos.SupportTicketRepository)
	deps.DisciplinaryActionService = appServices.NewDisciplinaryActionService(
		deps.Repos.DisciplinaryActionRepository,
		deps.Repos.StudentRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.AchievementController = appControllers.NewAchievementController(deps.AchievementService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.SalaryTemplateController = appControllers.NewSalaryTemplateController(deps.SalaryTemplateService)
	deps.TransportFormController = appControllers.NewTransportFormController(deps.TransportFormService)
	deps.LeaveRequestController = appControllers.NewLeaveRequestController(deps.LeaveRequestService)
	deps.EnquiryController = appControllers.NewEnquiryController(deps.EnquiryService)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService)
	deps.SupportTicketController = appControllers.NewSupportTicketController(deps.SupportTicketService)
	deps.DisciplinaryActionController = appControllers.NewDisciplinaryActionController(deps.DisciplinaryActionService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StaffController,
		deps.StudentController,
		deps.EventController,
		deps.AchievementController,
		deps.ProjectController,
		deps.SalaryTemplateController,
		deps.TransportFormController,
		deps.LeaveRequestController,
		deps.EnquiryController,
		deps.ResourceController,
		deps.SupportTicketController,
		deps.DisciplinaryActionController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
