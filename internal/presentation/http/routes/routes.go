package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/receipthub/receipthub-api/internal/config"
	"github.com/receipthub/receipthub-api/internal/presentation/http/handler"
	"github.com/receipthub/receipthub-api/internal/presentation/http/middleware"
	"github.com/receipthub/receipthub-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth  *handler.AuthHandler
	Check *handler.CheckHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", handler.Health(deps.Cfg.App.Name))

	// Public routes (no authentication required)
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// Protected routes (authentication required)
	checks := router.Group("/checks")
	checks.Use(middleware.AuthMiddleware(deps.JWTManager, deps.Cfg.JWT.CookieName))

	rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	checks.Use(rateLimiter.Middleware())

	{
		checks.POST("/create", h.Check.Create)
		checks.GET("/list", h.Check.List)
		checks.GET("/:check_id", h.Check.Get)
		checks.GET("/:check_id/text", h.Check.Text)
	}

	return router
}
