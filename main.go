package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/epeers/sedolchecker/config"
	_ "github.com/epeers/sedolchecker/docs"
	"github.com/epeers/sedolchecker/internal/handlers"
	"github.com/epeers/sedolchecker/internal/middleware"
	"github.com/epeers/sedolchecker/internal/sedol"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

// @title SEDOL Checker API
// @version 1.0
// @description Validates SEDOL security identifiers and computes their checksum digits.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	gin.SetMode(cfg.GinMode)

	// Initialize validator
	validator, err := sedol.New(cfg.CharacterWeights)
	if err != nil {
		log.Fatalf("Failed to create SEDOL validator: %v", err)
	}
	log.Infof("SEDOL validator ready with weights %v", validator.CharacterWeights())

	// Initialize handlers
	sedolHandler := handlers.NewSedolHandler(validator)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// SEDOL routes
	sedols := router.Group("/sedols")
	sedols.POST("/validate", sedolHandler.Validate)
	sedols.GET("/checksum", sedolHandler.Checksum)
	sedols.GET("/prefix", sedolHandler.Prefix)
	sedols.GET("/:sedol/validation", sedolHandler.Get)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Wait for interrupt signal (or a server failure) for graceful shutdown
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}

	log.Info("Server exited")
}
