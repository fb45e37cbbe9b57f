package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/benefitnavigator/backend/docs"
	"github.com/benefitnavigator/backend/internal/auth"
	"github.com/benefitnavigator/backend/internal/clients"
	"github.com/benefitnavigator/backend/internal/config"
	"github.com/benefitnavigator/backend/internal/database"
	"github.com/benefitnavigator/backend/internal/documents"
	"github.com/benefitnavigator/backend/internal/handlers"
	"github.com/benefitnavigator/backend/internal/logger"
	loggerMiddleware "github.com/benefitnavigator/backend/internal/logger/middleware"
	"github.com/benefitnavigator/backend/internal/middlewares"
	"github.com/benefitnavigator/backend/internal/repositories"
	"github.com/benefitnavigator/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// completionTimeout stays below the server write timeout so a slow model still gets a fallback answer
const completionTimeout = 55 * time.Second

// storeBackend is an opened document store backend
type storeBackend struct {
	repo  documents.Repository
	ping  func(ctx context.Context) error
	close func() error
}

// @title Benefit Navigator API
// @version 1.0
// @description Persistence and AI relay API of the Benefit Navigator for entrepreneurs of Uzbekistan
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@benefitnavigator.uz

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ClientID
// @in header
// @name X-Client-ID
// @description Opaque client namespace generated by the browser
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Benefit Navigator API", zap.String("store", cfg.Store.Driver))

	// Open the document store
	backend, err := openStore(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to open document store", zap.Error(err))
	}
	defer backend.close()

	store := documents.NewStore(backend.repo, logger.Logger)

	// Create Asynq client for notifications
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize clients
	completionClient := clients.NewCompletionClient(cfg.Completion.URL, cfg.Completion.APIKey, cfg.Completion.Model, completionTimeout)
	lexClient := clients.NewLexClient(cfg.News.RSSURL)
	if cfg.Completion.APIKey == "" {
		logger.Logger.Warn("Completion API key is not set, the assistant will answer with fallbacks")
	}

	// Initialize services
	sessionService := services.NewSessionService(store, tokenGenerator, logger.Logger)
	profileService := services.NewProfileService(store, logger.Logger)
	progressService := services.NewProgressService(store, logger.Logger)
	relayService := services.NewRelayService(completionClient, logger.Logger)
	newsService := services.NewNewsService(lexClient, cfg.News.CacheTTL, logger.Logger)
	contextService := services.NewContextService(lexClient, cfg.Context.AllowedHosts, logger.Logger)
	applicationService := services.NewApplicationService(store, asynqClient, logger.Logger)

	// Refresh the news cache in the background
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.News.RefreshCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := newsService.Refresh(ctx); err != nil {
			logger.Logger.Warn("Failed to refresh news cache", zap.Error(err))
		}
	}); err != nil {
		logger.Logger.Fatal("Invalid NEWS_REFRESH_CRON", zap.Error(err))
	}
	scheduler.Start()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionService, logger.Logger)
	profileHandler := handlers.NewProfileHandler(profileService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)
	aiHandler := handlers.NewAIHandler(relayService, cfg.RateLimit.AIPerMinute, logger.Logger)
	lexHandler := handlers.NewLexHandler(newsService, contextService, logger.Logger)
	applicationHandler := handlers.NewApplicationHandler(applicationService, logger.Logger)
	healthHandler := handlers.NewHealthHandler(backend.ping, logger.Logger)

	// Initialize auth middleware
	authMiddleware := auth.AuthMiddleware(tokenGenerator, sessionService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.ClientIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit.PerMinute, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	healthHandler.RegisterRoutes(r)

	r.Route("/api", func(r chi.Router) {
		sessionHandler.RegisterRoutes(r, authMiddleware)
		profileHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r)
		aiHandler.RegisterRoutes(r)
		lexHandler.RegisterRoutes(r)
		applicationHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: completionTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Warm the news cache
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := newsService.Refresh(ctx); err != nil {
			logger.Logger.Warn("Initial news refresh failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")
	<-scheduler.Stop().Done()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// openStore opens the document store backend selected by STORE_DRIVER
func openStore(cfg *config.Config) (*storeBackend, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMySQL:
		db, err := database.ConnectMySQL(cfg.DSN())
		if err != nil {
			return nil, err
		}
		if err := database.RunMySQLMigrations(db); err != nil {
			db.Close()
			return nil, err
		}
		return sqlBackend(db, repositories.DialectMySQL), nil

	case config.StoreDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return &storeBackend{
			repo:  repositories.NewRedisDocumentRepository(rdb, logger.Logger),
			ping:  func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			close: rdb.Close,
		}, nil

	case config.StoreDriverMemory:
		logger.Logger.Warn("Using in-memory document store, data is lost on restart")
		return &storeBackend{
			repo:  documents.NewMemoryRepository(),
			close: func() error { return nil },
		}, nil

	default:
		db, err := database.ConnectSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := database.RunSQLiteMigrations(db); err != nil {
			db.Close()
			return nil, err
		}
		return sqlBackend(db, repositories.DialectSQLite), nil
	}
}

func sqlBackend(db *sql.DB, dialect string) *storeBackend {
	return &storeBackend{
		repo:  repositories.NewDocumentRepository(db, dialect, logger.Logger),
		ping:  db.PingContext,
		close: db.Close,
	}
}
