package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akupelikilinc/TalhaBookLib/internal/auth"
	"github.com/akupelikilinc/TalhaBookLib/internal/config"
	"github.com/akupelikilinc/TalhaBookLib/internal/database"
	"github.com/akupelikilinc/TalhaBookLib/internal/database/books"
	"github.com/akupelikilinc/TalhaBookLib/internal/database/settings"
	"github.com/akupelikilinc/TalhaBookLib/internal/database/users"
	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
	http_controllers "github.com/akupelikilinc/TalhaBookLib/internal/http"
	"github.com/akupelikilinc/TalhaBookLib/internal/readonly"
	"github.com/akupelikilinc/TalhaBookLib/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting reading log v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	booksRepo := books.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)
	usersRepo := users.NewRepository(db.DB)

	// Bootstrap the admin account when the users table is empty
	if err := bootstrapAdmin(usersRepo, cfg); err != nil {
		log.Fatalf("Failed to bootstrap admin user: %v", err)
	}

	// Token signing secret: use the configured one or generate a fresh
	// secret, which invalidates outstanding tokens on restart.
	secret := cfg.Auth.TokenSecret
	if secret == "" {
		secret, err = auth.GenerateTokenSecret()
		if err != nil {
			log.Fatalf("Failed to generate token secret: %v", err)
		}
		log.Printf("Generated token secret (set AUTH_TOKEN_SECRET to persist)")
	}
	secretBytes, err := hex.DecodeString(secret)
	if err != nil {
		// Not hex, use as raw bytes
		secretBytes = []byte(secret)
	}

	tokens := auth.NewTokenManager(secretBytes, cfg.Auth.TokenTTL)
	authService := auth.NewService(usersRepo, tokens)

	// Read-only (guest) mode
	var readOnlyMiddleware *readonly.Middleware
	if cfg.ReadOnly.Enabled {
		log.Printf("Read-only mode enabled - write operations will be blocked")
		readOnlyMiddleware = readonly.NewMiddleware(true)
	}

	// Periodic summary snapshot logging
	var summaryScheduler *scheduler.SummaryLogScheduler
	if cfg.SummaryLog.Enabled {
		summaryScheduler = scheduler.NewSummaryLogScheduler(booksRepo, cfg.SummaryLog.Schedule)
		if err := summaryScheduler.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start summary log scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:           db,
		BookStore:          booksRepo,
		SettingStore:       settingsRepo,
		AuthService:        authService,
		ReadOnlyMiddleware: readOnlyMiddleware,
		Version:            version,
		Diagnostics:        cfg.Global.Diagnostics,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if summaryScheduler != nil {
			summaryScheduler.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}

// bootstrapAdmin creates the configured admin account on first run so the
// login endpoint works out of the box.
func bootstrapAdmin(usersRepo *users.Repository, cfg *config.Config) error {
	count, err := usersRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if _, err := usersRepo.Create(cfg.Seed.AdminUsername, hash, entities.UserRoleAdmin); err != nil {
		return err
	}

	log.Printf("Created admin user %q (change SEED_ADMIN_PASSWORD!)", cfg.Seed.AdminUsername)
	return nil
}
