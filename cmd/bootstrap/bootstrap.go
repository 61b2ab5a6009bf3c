package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"local-services-marketplace/config"
	deliveryHttp "local-services-marketplace/internal/delivery/http"
	"local-services-marketplace/internal/delivery/http/handler"
	"local-services-marketplace/internal/delivery/http/middleware"
	"local-services-marketplace/internal/infrastructure/cache"
	"local-services-marketplace/internal/infrastructure/database"
	"local-services-marketplace/internal/repository"
	"local-services-marketplace/internal/service"
	"local-services-marketplace/internal/session"
	"local-services-marketplace/internal/usecase"
	"local-services-marketplace/pkg/jwt"
	"local-services-marketplace/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config          *config.Config
	Log             *logrus.Logger
	DB              *gorm.DB
	RedisClient     *redis.Client
	Server          *http.Server
	CategoryUsecase usecase.CategoryUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := NewLogger(cfg.App)
	app.Log = log
	log.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB, log); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.initializeServer()

	return app, nil
}

// NewLogger builds the JSON logrus logger; an unknown level falls back to info.
func NewLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() {
	cfg, db, log := app.Config, app.DB, app.Log

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)
	sessions := session.NewStore(app.RedisClient)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProviderProfileRepository()
	categoryRepo := repository.NewCategoryRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	categoryCache := service.NewCategoryCache(app.RedisClient, log, cfg.Cache.CategoryTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, auditService, jwtService, sessions)
	profileUsecase := usecase.NewProviderProfileUsecase(db, log, customValidator, profileRepo, auditService)
	searchUsecase := usecase.NewProviderSearchUsecase(db, log, profileRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	app.CategoryUsecase = usecase.NewCategoryUsecase(db, log, categoryRepo, categoryCache)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	providerHandler := handler.NewProviderHandler(searchUsecase, profileUsecase, auditLogUsecase)
	categoryHandler := handler.NewCategoryHandler(app.CategoryUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(log, registry, authHandler, providerHandler, categoryHandler, authMiddleware, corsMiddleware)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := app.CategoryUsecase.Warm(ctx); err != nil {
		app.Log.Warnf("Failed to warm category cache: %+v", err)
	}
	cancel()

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
