package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"pubg-tracker/internal/cache"
	"pubg-tracker/internal/collector"
	"pubg-tracker/internal/config"
	"pubg-tracker/internal/pubg"
)

// seasonsync is a one-shot job that fetches squad-fpp season stats for the
// tracked players and publishes them to the data directory and the cache.
// Run it from cron or on demand; season stats change too slowly to poll.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatal("Failed to load config: ", err)
	}
	initLogger(cfg.Logging)

	if err := cfg.RequireAPIKey(); err != nil {
		logrus.Fatal("Failed to start: ", err)
	}
	if cfg.PUBG.SeasonID == "" {
		logrus.Fatal("PUBG_SEASON_ID is required for season sync")
	}

	logrus.WithFields(logrus.Fields{
		"service": "seasonsync",
		"season":  cfg.PUBG.SeasonID,
		"players": cfg.PUBG.Players,
	}).Info("Starting season stats sync")

	ctx := collector.SetupSignalHandler()
	client := pubg.NewClient(cfg.PUBG)

	playerIDs, err := client.PlayerIDs(ctx, cfg.PUBG.Players)
	if err != nil {
		logrus.Fatal("Failed to resolve player ids: ", err)
	}

	stats, err := client.SeasonStats(ctx, cfg.PUBG.SeasonID, cfg.PUBG.Players, playerIDs)
	if err != nil {
		logrus.Fatal("Failed to fetch season stats: ", err)
	}

	blob, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		logrus.Fatal("Failed to encode season stats: ", err)
	}

	path := filepath.Join(cfg.Data.Dir, "season.json")
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		logrus.Fatal("Failed to create data dir: ", err)
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		logrus.Fatal("Failed to write season stats: ", err)
	}
	logrus.WithField("path", path).Info("Season stats written")

	cacheClient := cache.New(cfg.Redis)
	defer cacheClient.Close()

	if err := cacheClient.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis unavailable, season stats not cached")
		return
	}
	if err := cacheClient.SetSeasonStats(ctx, blob); err != nil {
		logrus.WithError(err).Warn("Failed to cache season stats")
		return
	}
	logrus.Info("Season stats cached")
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
