// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/cache"
	"github.com/eventrix/eventrix-backend/internal/config"
	"github.com/eventrix/eventrix-backend/internal/database"
	"github.com/eventrix/eventrix-backend/internal/i18n"
	"github.com/eventrix/eventrix-backend/internal/middleware"
	"github.com/eventrix/eventrix-backend/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	setupLogging(cfg)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}
	if err := database.SeedInitialData(db, cfg.Admin); err != nil {
		logrus.WithError(err).Fatal("Failed to seed initial data")
	}

	viewCache, denylist, closeRedis := connectCache(cfg)
	defer closeRedis()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	stop := make(chan struct{})
	limiters := middleware.NewLimiters(cfg.RateLimit)
	limiters.Start(stop)

	r := router.Initialize(db, viewCache, denylist, limiters, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.Server.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
		return
	}
	logrus.Info("Server exited")
}

func setupLogging(cfg *config.Config) {
	if cfg.IsProduction() || cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.WithField("level", cfg.Log.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// connectCache returns the Redis-backed cache and denylist, or in-process
// fallbacks when Redis is disabled or unreachable.
func connectCache(cfg *config.Config) (cache.Cache, cache.Denylist, func()) {
	if !cfg.Redis.Enabled {
		logrus.Info("Redis disabled; facet views are not cached")
		return cache.Noop{}, cache.NewMemoryDenylist(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := cache.Connect(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable; falling back to in-process token denylist")
		return cache.Noop{}, cache.NewMemoryDenylist(), func() {}
	}

	logrus.WithField("addr", cfg.Redis.Addr()).Info("Redis connection established")
	return cache.NewRedisCache(client, cfg.Cache.KeyPrefix, "sidebar"),
		cache.NewRedisDenylist(client, cfg.Cache.KeyPrefix),
		func() { client.Close() }
}
