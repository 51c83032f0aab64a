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

	_ "github.com/sykli/college-backend/docs" // Swagger docs registration
	appControllers "github.com/sykli/college-backend/internal/app/controllers"
	appMigrations "github.com/sykli/college-backend/internal/app/migrations"
	appRepos "github.com/sykli/college-backend/internal/app/repositories"
	appRoutes "github.com/sykli/college-backend/internal/app/routes"
	appServices "github.com/sykli/college-backend/internal/app/services"
	"github.com/sykli/college-backend/internal/config"
	"github.com/sykli/college-backend/internal/db"
	"github.com/sykli/college-backend/internal/jobs"
	appMiddleware "github.com/sykli/college-backend/internal/middleware"
	pkgAuth "github.com/sykli/college-backend/internal/pkg/auth"
	"github.com/sykli/college-backend/internal/pkg/email"
	"github.com/sykli/college-backend/internal/pkg/filestorage"
	"github.com/sykli/college-backend/internal/pkg/helpers"
	"github.com/sykli/college-backend/internal/pkg/logger"
	"github.com/sykli/college-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	ApplicationService    *appServices.ApplicationService
	EnrollmentService     *appServices.EnrollmentService
	StudentService        *appServices.StudentService
	AuthController        *appControllers.AuthController
	ApplicationController *appControllers.ApplicationController
	StudentController     *appControllers.StudentController
	CatalogController     *appControllers.CatalogController
	AssetController       *appControllers.AssetController
	NewsController        *appControllers.NewsController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	EmailService          email.EmailService
	FileStorage           *filestorage.LocalStorage
	Scheduler             *jobs.Scheduler
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

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
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Startup continues; missing seed data only degrades first use
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
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

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:            cfg.SMTP.Host,
		Port:            cfg.SMTP.Port,
		Username:        cfg.SMTP.Username,
		Password:        cfg.SMTP.Password,
		FromName:        cfg.SMTP.FromName,
		FromEmail:       cfg.SMTP.FromEmail,
		InstitutionName: cfg.Institution.Name,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.ProfileRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.CourseRepository,
		lgr,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.ApplicationRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ProfileRepository,
		deps.Repos.EnrollmentIntentRepository,
		deps.EmailService,
		cfg,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)

	schoolService := appServices.NewSchoolService(deps.Repos.SchoolRepository)
	departmentService := appServices.NewDepartmentService(deps.Repos.DepartmentRepository, deps.Repos.SchoolRepository)
	courseService := appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.SubjectRepository, deps.Repos.DepartmentRepository)
	facultyService := appServices.NewFacultyService(deps.Repos.FacultyMemberRepository, deps.Repos.DepartmentRepository)
	assetService := appServices.NewAssetService(deps.Repos.AssetRepository, deps.Repos.ProfileRepository, deps.FileStorage, lgr)
	newsService := appServices.NewNewsService(deps.Repos.NewsRepository, deps.FileStorage, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, deps.EnrollmentService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CatalogController = appControllers.NewCatalogController(schoolService, departmentService, courseService, facultyService)
	deps.AssetController = appControllers.NewAssetController(assetService)
	deps.NewsController = appControllers.NewNewsController(newsService)

	deps.Scheduler = jobs.NewScheduler(deps.EnrollmentService, deps.Repos.TokenRepository, cfg, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ApplicationController,
		deps.StudentController,
		deps.CatalogController,
		deps.AssetController,
		deps.NewsController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
