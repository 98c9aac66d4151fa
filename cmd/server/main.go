package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bariskaplan/portfolio-hub/internal/handlers"
	"github.com/bariskaplan/portfolio-hub/internal/middleware"
	"github.com/bariskaplan/portfolio-hub/internal/repositories"
	"github.com/bariskaplan/portfolio-hub/internal/services"
	"github.com/bariskaplan/portfolio-hub/pkg/config"
	"github.com/bariskaplan/portfolio-hub/pkg/database"
	"github.com/bariskaplan/portfolio-hub/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	logger.Init()

	// Initialize database
	if err := database.Init(); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	projectRepo := repositories.NewProjectRepository(database.DB)
	cartRepo := repositories.NewCartRepository(database.DB)
	projectService := services.NewProjectService(projectRepo)
	cartService := services.NewCartService(cartRepo)
	exportService := services.NewExportService(projectRepo)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CORS.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}))

	// Setup routes
	projectHandler := handlers.NewProjectHandler(projectService, exportService)
	cartHandler := handlers.NewCartHandler(cartService)
	healthHandler := handlers.NewHealthHandler()

	projectHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	router.GET("/health", healthHandler.HealthCheck)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
