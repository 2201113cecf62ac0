// @title           Client Portal API
// @version         1.0.0
// @description     Backend for the client portal: project-code authentication, project dashboards, an admin surface for clients, updates and media, and job listings.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /admin/login.

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"client-portal/docs"
	"client-portal/internal/auth"
	"client-portal/internal/config"
	"client-portal/internal/database"
	"client-portal/internal/handlers"
	"client-portal/internal/logger"
	"client-portal/internal/middleware"
	"client-portal/internal/scraper"
	"client-portal/internal/services"
	"client-portal/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.Environment)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.UsesFallbackAdminPassword() {
		log.Warn("ADMIN_PASSWORD not set, admin login is using the built-in fallback password")
	}
	if cfg.AdminTokenSecret == "" {
		log.Warn("ADMIN_TOKEN_SECRET not set, admin tokens will not survive a restart")
	}
	if cfg.SupabaseServiceRoleKey == "" {
		log.Warn("SUPABASE_SERVICE_ROLE_KEY not set, admin operations use the anon key")
	}

	clients, err := supabase.NewClients(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase clients: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.PrivilegedKey(), cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	var orphans services.OrphanStore = services.NewLogOrphanStore(log)
	var ledger handlers.Pinger
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, migrations are skipped and orphaned blobs are only logged")
	} else {
		dbClient, err := setupDatabase(cfg.DatabaseURL, log)
		if err != nil {
			log.WithError(err).Warn("Database unavailable, orphaned blobs are only logged")
		} else {
			defer dbClient.Close()
			orphans = dbClient
			ledger = dbClient
		}
	}

	gate, err := auth.NewAdminGate(cfg.AdminPassword, cfg.AdminTokenSecret, cfg.AdminTokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize admin gate: %v", err)
	}

	adminStore := supabase.NewRecordStore(clients.Admin)
	publicPortal := services.NewPortalService(supabase.NewRecordStore(clients.Public), log).
		WithCredentialStore(adminStore)
	adminPortal := services.NewPortalService(adminStore, log)
	mediaService := services.NewMediaService(adminStore, storageClient, orphans, log)

	var remote scraper.Fetcher
	if cfg.ScraperURL != "" {
		remote = scraper.NewClient(cfg.ScraperURL, cfg.ScraperAPIKey)
	}
	jobService := scraper.NewService(remote, log)

	router := setupRouter(log, gate,
		handlers.NewHealthHandler(ledger),
		handlers.NewClientHandler(publicPortal, log),
		handlers.NewAdminHandler(gate, adminPortal, log),
		handlers.NewUpdatesHandler(adminPortal, log),
		handlers.NewMediaHandler(mediaService, log),
		handlers.NewJobsHandler(jobService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	log.Info("Server exited")
}

// setupDatabase applies migrations and opens the orphan ledger connection.
func setupDatabase(dbURL string, log *logrus.Logger) (*supabase.DatabaseClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrator, err := database.NewMigrator(dbURL, log)
	if err != nil {
		return nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		log.WithError(err).Warn("Migration failed")
	} else {
		log.Info("Migrations completed successfully")
	}

	return supabase.NewDatabaseClient(dbURL)
}

func setupRouter(
	log *logrus.Logger,
	gate *auth.AdminGate,
	healthHandler *handlers.HealthHandler,
	clientHandler *handlers.ClientHandler,
	adminHandler *handlers.AdminHandler,
	updatesHandler *handlers.UpdatesHandler,
	mediaHandler *handlers.MediaHandler,
	jobsHandler *handlers.JobsHandler,
) *gin.Engine {
	handlers.ConfigureBinding()

	router := gin.New()
	router.MaxMultipartMemory = handlers.MaxUploadBytes

	router.Use(middleware.RequestLogger(log))
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")

	// Client-facing, no auth
	api.GET("/client/:projectCode", clientHandler.GetProject)
	api.POST("/client/auth", clientHandler.Authenticate)

	// Job listings
	api.GET("/scrape-jobs", jobsHandler.GetJobs)
	api.GET("/scrape-jobs/fallback", handlers.FallbackJobs)

	api.POST("/admin/login", adminHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(gate))

	admin.GET("/clients", adminHandler.ListClients)
	admin.POST("/clients", adminHandler.CreateClient)
	admin.GET("/project/:projectCode", adminHandler.GetProject)
	admin.PUT("/project/:projectCode", adminHandler.UpdateProject)

	admin.POST("/updates", updatesHandler.CreateUpdate)
	admin.PUT("/updates", updatesHandler.EditUpdate)
	admin.DELETE("/updates", updatesHandler.DeleteUpdate)

	admin.POST("/media", mediaHandler.UploadMedia)
	admin.DELETE("/media", mediaHandler.DeleteMedia)
	admin.POST("/media/orphans/sweep", mediaHandler.SweepOrphans)

	return router
}
