package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/maritime_route_intel/internal/config"
	v1 "github.com/shenikar/maritime_route_intel/internal/handler/http/v1"
	"github.com/shenikar/maritime_route_intel/internal/pathsearch"
	"github.com/shenikar/maritime_route_intel/internal/service"
	"github.com/shenikar/maritime_route_intel/internal/webhook"
	"github.com/shenikar/maritime_route_intel/pkg/logger"
	redisclient "github.com/shenikar/maritime_route_intel/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/maritime_route_intel/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Maritime Route Intelligence API
// @version 1.0
// @description Crowdsourced hazard and traffic reports with annotated sea-lane routing.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if cfg.StorageBackend == config.StoragePostgres {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	}

	// Redis нужен очереди вебхуков и одноименному хранилищу
	var redisClient *redis.Client
	if cfg.WebhookURL != "" || cfg.StorageBackend == config.StorageRedis {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.StorageTimeout)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Инициализация хранилищ
	stores, err := openStorage(ctx, cfg, redisClient)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageBackend, err)
	}
	defer stores.Close()
	log.WithField("backend", cfg.StorageBackend).Info("Storage backend ready")

	// Инициализация издателя и воркера вебхуков
	var publisher webhook.EventPublisher = webhook.NoopPublisher{}
	if cfg.WebhookURL != "" {
		publisher = webhook.NewRedisEventPublisher(redisClient)
		webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	} else {
		log.Info("WEBHOOK_URL is not set, hazard events are not delivered")
	}

	// Сеть морских линий
	graph, err := pathsearch.LoadGraph(cfg.LaneGraphPath)
	if err != nil {
		log.Fatalf("Failed to load lane graph: %v", err)
	}
	log.WithField("nodes", graph.Len()).Info("Lane graph loaded")

	// Инициализация сервисов
	hazardService := service.NewHazardService(ctx, stores.Hazards, log, cfg, publisher)
	trafficService := service.NewTrafficService(ctx, stores.Traffic, log, cfg)
	routeService := service.NewRouteService(pathsearch.NewSearcher(graph, log), hazardService, trafficService, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(hazardService, trafficService, routeService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg)))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	log.Info("Server gracefully stopped")
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-API-Key"}
	return c
}
