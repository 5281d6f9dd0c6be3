package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"pubg-tracker/internal/cache"
	"pubg-tracker/internal/collector"
	"pubg-tracker/internal/config"
	"pubg-tracker/internal/history"
	"pubg-tracker/internal/match"
	"pubg-tracker/internal/monitoring"
	"pubg-tracker/internal/pubg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatal("Failed to load config: ", err)
	}
	initLogger(cfg.Logging)

	if err := cfg.RequireAPIKey(); err != nil {
		logrus.Fatal("Failed to start: ", err)
	}

	logrus.WithFields(logrus.Fields{
		"service": "tracker",
		"players": cfg.PUBG.Players,
		"shard":   cfg.PUBG.Shard,
	}).Info("Starting PUBG tracker")

	store, err := history.Load(filepath.Join(cfg.Data.Dir, "matches.json"))
	if err != nil {
		logrus.Fatal("Failed to load match ledger: ", err)
	}
	logrus.WithField("matches", store.Len()).Info("Match ledger loaded")

	cacheClient := cache.New(cfg.Redis)
	defer cacheClient.Close()

	ctx := collector.SetupSignalHandler()

	if err := cacheClient.Ping(ctx); err != nil {
		logrus.Fatal("Failed to connect to Redis: ", err)
	}

	// Seed the cache from the persisted ledger so the query service has data
	// before the first poll completes.
	if summaries, err := store.EncodeMatches(); err == nil {
		if err := cacheClient.SetSummaries(ctx, summaries); err != nil {
			logrus.WithError(err).Warn("Failed to seed summary cache")
		}
	}
	seedCombatLogs(ctx, cacheClient, store, cfg.Data.Dir)

	metrics := monitoring.NewMetrics()
	go serveMetrics(cfg.Server.MetricsAddr(), metrics)

	client := pubg.NewClient(cfg.PUBG)
	processor := match.NewProcessor(cfg.PUBG.Players, store)
	poller := collector.NewPoller(client, processor, store, cacheClient,
		cfg.PUBG.Players, cfg.Data.Dir, cfg.PUBG.PollInterval)

	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logrus.Fatal("Poller exited: ", err)
	}
	logrus.Info("PUBG tracker stopped gracefully")
}

// serveMetrics exposes the scrape endpoint; the tracker has no other HTTP
// surface.
func serveMetrics(addr string, metrics *monitoring.Metrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	logrus.WithField("addr", addr).Info("Metrics endpoint listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logrus.WithError(err).Warn("Metrics endpoint failed")
	}
}

// seedCombatLogs mirrors the persisted combat logs for ledger entries into
// the cache, recovering the mirror after a Redis flush or restart.
func seedCombatLogs(ctx context.Context, cacheClient *cache.Cache, store *history.Store, dataDir string) {
	for _, summary := range store.Matches() {
		path := filepath.Join(dataDir, "matches", summary.ID+".json")
		blob, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := cacheClient.SetMatch(ctx, summary.ID, blob); err != nil {
			logrus.WithError(err).WithField("match_id", summary.ID).Warn("Failed to seed combat log cache")
		}
	}
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
