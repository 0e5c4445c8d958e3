package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.Diagnostics {
		router.Use(func(c *gin.Context) {
			c.Set(ContextKeyDiagnostics, true)
			c.Next()
		})
	}

	// Apply read-only mode middleware if enabled
	if cfg.ReadOnlyMiddleware != nil && cfg.ReadOnlyMiddleware.IsEnabled() {
		router.Use(cfg.ReadOnlyMiddleware.Handler())
	}

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.BookStore)
	settingsController := NewSettingsController(cfg.SettingStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	router.GET("/api/books", booksController.List)
	router.GET("/api/books/:id", booksController.GetByID)
	router.POST("/api/books", booksController.Create)
	router.PUT("/api/books/:id", booksController.Update)
	router.DELETE("/api/books/:id", booksController.Delete)

	// Statistics endpoints
	router.GET("/api/stats/summary", booksController.Summary)
	router.GET("/api/stats/extras", booksController.Extras)

	// Settings endpoints
	router.GET("/api/settings", settingsController.All)
	router.GET("/api/settings/:key", settingsController.Get)
	router.PUT("/api/settings/:key", settingsController.Upsert)
	router.DELETE("/api/settings/:key", settingsController.Delete)

	// Auth endpoints
	if cfg.AuthService != nil {
		authController := NewAuthController(cfg.AuthService)
		router.POST("/api/auth/login", authController.Login)
		router.GET("/api/auth/verify", authController.Verify)
	}

	// Read-only mode status endpoint (always available)
	router.GET("/api/readonly/status", func(c *gin.Context) {
		enabled := cfg.ReadOnlyMiddleware != nil && cfg.ReadOnlyMiddleware.IsEnabled()
		c.JSON(http.StatusOK, gin.H{"read_only": enabled})
	})

	return router
}
