package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/receipthub/receipthub-api/internal/application/service"
	"github.com/receipthub/receipthub-api/internal/config"
	"github.com/receipthub/receipthub-api/internal/infrastructure/database"
	"github.com/receipthub/receipthub-api/internal/infrastructure/repository"
	"github.com/receipthub/receipthub-api/internal/presentation/http/handler"
	"github.com/receipthub/receipthub-api/internal/presentation/http/routes"
	"github.com/receipthub/receipthub-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.Algorithm,
		cfg.JWT.Expiry,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	checkRepo := repository.NewCheckRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, cfg.Database.QueryTimeout)
	checkService := service.NewCheckService(checkRepo, userRepo, cfg.Database.QueryTimeout)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:  handler.NewAuthHandler(authService, &cfg.JWT),
		Check: handler.NewCheckHandler(checkService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
