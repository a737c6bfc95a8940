// Package bootstrap wires configuration, storage, services and the router.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/anirudh/campusconnect/docs" // generated swagger docs
	appControllers "github.com/anirudh/campusconnect/internal/app/controllers"
	appMigrations "github.com/anirudh/campusconnect/internal/app/migrations"
	appRepos "github.com/anirudh/campusconnect/internal/app/repositories"
	appRoutes "github.com/anirudh/campusconnect/internal/app/routes"
	appServices "github.com/anirudh/campusconnect/internal/app/services"
	"github.com/anirudh/campusconnect/internal/cache"
	"github.com/anirudh/campusconnect/internal/config"
	"github.com/anirudh/campusconnect/internal/db"
	appMiddleware "github.com/anirudh/campusconnect/internal/middleware"
	"github.com/anirudh/campusconnect/internal/pkg/logger"
	"github.com/anirudh/campusconnect/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	EventService           appServices.EventService
	ClubService            appServices.ClubService
	RegistrationService    appServices.RegistrationService
	SearchService          appServices.SearchService
	AuthController         *appControllers.AuthController
	EventController        *appControllers.EventController
	ClubController         *appControllers.ClubController
	RegistrationController *appControllers.RegistrationController
	SearchController       *appControllers.SearchController
	Repos                  *appRepos.Repositories
	Redis                  *redis.Client
	Logger                 zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding failure is not fatal, the schema is in place
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The events cache only exists when Redis is configured
	var eventsCache *cache.EventsCache
	if cfg.Redis.Addr != "" {
		deps.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := deps.Redis.Ping(ctx).Err(); err != nil {
			lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, event listing cache disabled")
			_ = deps.Redis.Close()
			deps.Redis = nil
		} else {
			ttl, err := time.ParseDuration(cfg.Redis.EventsTTL)
			if err != nil {
				return nil, fmt.Errorf("invalid redis events TTL: %w", err)
			}
			eventsCache = cache.NewEventsCache(deps.Redis, ttl, lgr)
			lgr.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("Event listing cache enabled")
		}
	}

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, eventsCache, lgr)
	deps.ClubService = appServices.NewClubService(deps.Repos.ClubRepository, lgr)
	deps.RegistrationService = appServices.NewRegistrationService(deps.Repos.RegistrationRepository, lgr)
	deps.SearchService = appServices.NewSearchService(deps.Repos.EventRepository, deps.Repos.ClubRepository, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.ClubController = appControllers.NewClubController(deps.ClubService, lgr)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService, lgr)
	deps.SearchController = appControllers.NewSearchController(deps.SearchService, lgr)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventController,
		deps.ClubController,
		deps.RegistrationController,
		deps.SearchController,
	)

	return router
}
