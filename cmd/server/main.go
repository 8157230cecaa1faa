package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"coride/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"coride/internal/auth"
	"coride/internal/cache"
	"coride/internal/config"
	"coride/internal/db"
	"coride/internal/handler"
	"coride/internal/repository"
	"coride/internal/router"
	"coride/internal/seed"
	"coride/internal/service"
)

// @title CoRide API
// @version 1.0
// @description Workplace carpooling API: rides, seat requests, messages, notifications and sustainability statistics.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	var (
		repos   *repository.Repositories
		seeder  *seed.Seeder
		cacheDB *cache.Client
	)

	switch cfg.DataSource {
	case config.DataSourceFixtures:
		log.Println("using the in-memory sample dataset")
		repos = repository.NewMemoryRepositories(nil)
	default:
		gormDB, err := db.Open(cfg)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}

		// Drop tables if RESET_DB environment variable is set
		if os.Getenv("RESET_DB") == "true" {
			log.Println("RESET_DB=true detected, dropping all tables...")
			models := repository.Models()
			for i := len(models) - 1; i >= 0; i-- {
				if err := gormDB.Migrator().DropTable(models[i]); err != nil {
					log.Printf("Warning: Failed to drop table (may not exist): %v", err)
				}
			}
			log.Println("Tables dropped")
		}

		seeder = seed.NewSeeder(gormDB)
		if err := seeder.Migrate(); err != nil {
			log.Fatalf("%v", err)
		}
		repos = repository.NewGormRepositories(gormDB)
	}

	var sessions auth.SessionRepository
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		cacheDB = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := cacheDB.Ping(ctx); err != nil {
			log.Printf("[WARN] redis unreachable at %s: %v", cfg.RedisAddr, err)
		}
		cancel()
		sessions = auth.NewRedisSessionRepository(cacheDB.Redis())
	default:
		sessions = auth.NewMemorySessionRepository()
	}
	defer cacheDB.Close()

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	notificationService := service.NewNotificationService(repos.Notifications, cfg.SessionTTL)
	authService := service.NewAuthService(repos.Users, sessions, jwtService, notificationService, service.AuthOptions{
		Organization: cfg.DefaultOrganization,
		SessionTTL:   cfg.SessionTTL,
	})
	rideService := service.NewRideService(repos.Rides, repos.RideRequests, notificationService)
	messageService := service.NewMessageService(repos.Messages, repos.Users, repos.Rides, notificationService)
	statsService := service.NewStatsService(repos.Stats, cacheDB, cfg.OrgHeadcount)

	// Initialize handlers
	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Rides:         handler.NewRideHandler(rideService),
		Messages:      handler.NewMessageHandler(messageService),
		Notifications: handler.NewNotificationHandler(notificationService),
		Admin:         handler.NewAdminHandler(statsService),
		Chatbot:       handler.NewChatbotHandler(cfg.ChatbotURL),
	}
	if seeder != nil {
		handlers.Seed = handler.NewSeedHandler(seeder, statsService)
	}

	// Register routes
	router.Register(e, cfg, jwtService, authService, handlers)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
		if strings.HasPrefix(cfg.SwaggerHost, "http") {
			swaggerURL = strings.TrimSuffix(cfg.SwaggerHost, "/") + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + host + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
