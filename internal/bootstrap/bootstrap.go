// Package bootstrap assembles the application: configuration, logging,
// database, repositories, services, controllers, and the Gin router.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/naveen/management/internal/app/controllers"
	appMigrations "github.com/naveen/management/internal/app/migrations"
	appRepos "github.com/naveen/management/internal/app/repositories"
	appRoutes "github.com/naveen/management/internal/app/routes"
	appServices "github.com/naveen/management/internal/app/services"
	"github.com/naveen/management/internal/config"
	"github.com/naveen/management/internal/db"
	appMiddleware "github.com/naveen/management/internal/middleware"
	"github.com/naveen/management/internal/pkg/logger"
	"github.com/naveen/management/internal/seed"
	"github.com/naveen/management/internal/web"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Repos              *appRepos.Repositories
	UserService        *appServices.UserService
	CategoryService    *appServices.CategoryService
	StudentService     *appServices.StudentService
	ProductService     *appServices.ProductService
	UserController     *appControllers.UserController
	CategoryController *appControllers.CategoryController
	StudentController  *appControllers.StudentController
	ProductController  *appControllers.ProductController
	HealthController   *appControllers.HealthController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
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

// SetupDatabase establishes the database connection, applies the embedded
// migrations, and seeds the default categories.
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.Migrate(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Missing seed data is not fatal; the app works with an empty catalog.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.UserService = appServices.NewUserService(deps.Repos.User)
	deps.CategoryService = appServices.NewCategoryService(deps.Repos.Category)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Student)
	deps.ProductService = appServices.NewProductService(deps.Repos.Product)

	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CategoryController = appControllers.NewCategoryController(deps.CategoryService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.CategoryService)
	deps.ProductController = appControllers.NewProductController(deps.ProductService, deps.CategoryService)
	deps.HealthController = appControllers.NewHealthController(dbPool)

	return deps
}

// SetupRouter configures the Gin engine with middleware, templates, and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.Recovery())

	router.SetHTMLTemplate(web.Templates())

	appRoutes.Register(router, appRoutes.Controllers{
		User:     deps.UserController,
		Category: deps.CategoryController,
		Student:  deps.StudentController,
		Product:  deps.ProductController,
		Health:   deps.HealthController,
	})

	return router
}
