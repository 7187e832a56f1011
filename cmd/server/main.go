package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"entry-tracker-backend/internal/api/routes"
	"entry-tracker-backend/internal/config"
	"entry-tracker-backend/internal/database"
	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	_ "entry-tracker-backend/docs" // This is needed for swag
)

//	@title			Entry Tracker API
//	@version		1.0
//	@description	Tracks job-application entries: companies you apply to and the recruitment themes you answer for each.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/

//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						entry_session
//	@description				Session cookie set by signup or login. "Authorization: Bearer <token>" is also accepted.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		if apperrors.IsConfiguration(err) {
			logrus.WithError(err).Fatal("Invalid configuration")
		}
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logrus.SetOutput(os.Stdout)
	logger.Setup(cfg.LogLevel)

	// Initialize database
	dbOpts := &database.Options{}
	if cfg.IsDevelopment() && cfg.LogLevel == "debug" {
		dbOpts.LogLevel = gormlogger.Info
	}
	db, err := database.Initialize(cfg.DatabaseURL, dbOpts)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, sessions, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Expired sessions are purged in the background until shutdown
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sessions.RunSweeper(ctx, cfg.SessionSweepInterval)
	}()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"port":          cfg.Port,
			"environment":   cfg.Environment,
			"session_store": cfg.SessionStore,
		}).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logrus.WithError(err).Error("Server failed")
		}
		stop()
	case <-ctx.Done():
		logrus.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
	<-sweeperDone
}
