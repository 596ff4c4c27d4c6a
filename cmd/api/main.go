package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/saiydurnetcom/nexuspm/internal/adapter/handler"
	"github.com/saiydurnetcom/nexuspm/internal/adapter/repository"
	"github.com/saiydurnetcom/nexuspm/internal/infrastructure/cache"
	"github.com/saiydurnetcom/nexuspm/internal/infrastructure/database"
	httpmw "github.com/saiydurnetcom/nexuspm/internal/infrastructure/http/middleware"
	"github.com/saiydurnetcom/nexuspm/internal/usecase/aisettings"
	"github.com/saiydurnetcom/nexuspm/internal/usecase/suggestion"
	pkgai "github.com/saiydurnetcom/nexuspm/pkg/ai"
	"github.com/saiydurnetcom/nexuspm/pkg/config"
	"github.com/saiydurnetcom/nexuspm/pkg/jwt"
	pkgvalidator "github.com/saiydurnetcom/nexuspm/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize database
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Schema migrations run only when explicitly enabled. Production
	// deployments manage schema through sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production; manage schema with sql-migrate instead")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Settings cache store: Redis when reachable, in-process otherwise.
	// Single-node deployments work fine without Redis.
	var store cache.Store
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		store = cache.NewMemoryStore()
	} else {
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, logger)
	}

	// Repositories
	suggestionRepo := repository.NewSuggestionRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Auth
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	// Usecases
	settingsService := aisettings.NewService(settingsRepo, store, aisettings.DefaultTTL, logger)
	oracle := pkgai.NewClient(&cfg.AI, settingsService, logger)
	suggestionService := suggestion.NewService(suggestionRepo, meetingRepo, taskRepo, oracle, logger)

	// Handlers and routes
	suggestionHandler := handler.NewSuggestion(suggestionService, logger)
	settingsHandler := handler.NewSettings(settingsService, logger)
	router := handler.NewRouter(cfg, suggestionHandler, settingsHandler, httpmw.EchoAuth(jwtManager))
	router.Setup(e)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("addr", addr))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}

// buildLogger picks the zap preset for the environment
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
