// Package v1 provides the HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"

	"inventaro/internal/config"
	"inventaro/internal/domain/article"
	"inventaro/internal/infrastructure/http/v1/handlers"
	"inventaro/internal/infrastructure/http/v1/middleware"
	"inventaro/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Articles serves the /articles resource
	Articles *article.Service

	// DB is pinged by the readiness check
	DB handlers.Pinger

	// CORS settings for the browser frontend
	CORS config.CORSConfig
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	router := gin.New()

	// Global middleware (order matters!). Recovery sits inside ErrorHandler
	// so that a recovered panic is still rendered.
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	baseHandler := handlers.NewBaseHandler()
	articleHandler := handlers.NewArticleHandler(baseHandler, cfg.Articles)
	RegisterArticleRoutes(router.Group("/articles"), articleHandler)

	return router
}
