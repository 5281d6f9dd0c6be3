package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pubg-tracker/internal/cache"
	"pubg-tracker/internal/collector"
	"pubg-tracker/internal/config"
	"pubg-tracker/internal/handlers"
	"pubg-tracker/internal/middleware"
	"pubg-tracker/internal/monitoring"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatal("Failed to load config: ", err)
	}
	initLogger(cfg.Logging)

	logrus.WithFields(logrus.Fields{
		"service": "server",
		"addr":    cfg.Server.Addr(),
	}).Info("Starting PUBG query server")

	cacheClient := cache.New(cfg.Redis)
	defer cacheClient.Close()

	ctx := collector.SetupSignalHandler()

	if err := cacheClient.Ping(ctx); err != nil {
		logrus.Fatal("Failed to connect to Redis: ", err)
	}

	metrics := monitoring.NewMetrics()
	router := setupRouter(cfg, cacheClient, metrics)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Server failed: ", err)
		}
	}()
	logrus.WithField("addr", cfg.Server.Addr()).Info("Query server listening")

	<-ctx.Done()
	logrus.Info("Shutting down query server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Forced shutdown: ", err)
	}
	logrus.Info("Query server stopped gracefully")
}

func setupRouter(cfg *config.Config, cacheClient *cache.Cache, metrics *monitoring.Metrics) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(metrics.Middleware())

	matchHandler := handlers.NewMatchHandler(cacheClient)
	healthHandler := handlers.NewHealthHandler(cacheClient)

	router.GET("/matches", matchHandler.GetMatches)
	router.GET("/match/:id", matchHandler.GetMatch)
	router.GET("/season", matchHandler.GetSeasonStats)

	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}

func initLogger(cfg config.LoggingConfig) {
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)
}
