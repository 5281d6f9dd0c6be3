// Package collector runs the outer polling loop: discover recent match ids
// for the tracked roster, run unseen matches through the enrichment core,
// and persist/mirror the results.
package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"pubg-tracker/internal/history"
	"pubg-tracker/internal/match"
	"pubg-tracker/internal/monitoring"
	"pubg-tracker/internal/pubg"
	"pubg-tracker/internal/telemetry"
)

// MatchFetcher is the provider surface the poller needs. Separate from
// pubg.Client so tests can substitute a fake.
type MatchFetcher interface {
	PlayerMatches(ctx context.Context, names []string) ([]string, error)
	MatchOverview(ctx context.Context, matchID string) (*pubg.MatchOverview, error)
	Telemetry(ctx context.Context, telemetryURL string) ([]telemetry.Event, error)
}

// Mirror is the cache surface the poller writes through. Implemented by
// cache.Cache.
type Mirror interface {
	SetSummaries(ctx context.Context, blob []byte) error
	SetMatch(ctx context.Context, matchID string, blob []byte) error
	DeleteMatch(ctx context.Context, matchID string) error
}

// Poller drives the fetch → enrich → persist cycle on a fixed interval.
// Matches are processed strictly one at a time; the retention ledger is the
// only shared mutable state and each match's decision is one logical unit.
type Poller struct {
	fetcher   MatchFetcher
	processor *match.Processor
	store     *history.Store
	cache     Mirror
	players   []string
	dataDir   string
	interval  time.Duration
	log       *logrus.Entry
}

// NewPoller wires the polling loop.
func NewPoller(fetcher MatchFetcher, processor *match.Processor, store *history.Store,
	mirror Mirror, players []string, dataDir string, interval time.Duration) *Poller {
	return &Poller{
		fetcher:   fetcher,
		processor: processor,
		store:     store,
		cache:     mirror,
		players:   players,
		dataDir:   dataDir,
		interval:  interval,
		log:       logrus.WithField("component", "poller"),
	}
}

// Run polls until the context is cancelled. The first cycle starts
// immediately. Fetch failures are logged and the loop keeps going; a dead
// API key is logged loudly but treated the same, it may be rotated under us.
func (p *Poller) Run(ctx context.Context) error {
	p.log.WithFields(logrus.Fields{
		"players":  p.players,
		"interval": p.interval,
	}).Info("poller started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.cycle(ctx)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("poller stopping")
			return ctx.Err()
		case <-ticker.C:
			p.cycle(ctx)
		}
	}
}

func (p *Poller) cycle(ctx context.Context) {
	matchIDs, err := p.fetcher.PlayerMatches(ctx, p.players)
	if err != nil {
		monitoring.PollFailuresTotal.WithLabelValues("player_matches").Inc()
		if pubg.IsAPIKeyError(err) {
			p.log.WithError(err).Error("provider rejected the API key")
		} else {
			p.log.WithError(err).Warn("failed to fetch match ids")
		}
		return
	}

	for _, id := range dedupe(matchIDs) {
		if ctx.Err() != nil {
			return
		}
		// Cheap pre-check; ProcessMatch re-decides under the ledger lock.
		if p.store.Contains(id) {
			continue
		}
		if err := p.processOne(ctx, id); err != nil {
			p.log.WithError(err).WithField("match_id", id).Warn("match failed, will not be marked processed")
		}
	}
}

// processOne runs one match through the full pipeline. Any failure before
// the novelty gate leaves the ledger untouched, so the match is retried on a
// later cycle.
func (p *Poller) processOne(ctx context.Context, matchID string) error {
	overview, err := p.fetcher.MatchOverview(ctx, matchID)
	if err != nil {
		monitoring.PollFailuresTotal.WithLabelValues("overview").Inc()
		return err
	}

	events, err := p.fetcher.Telemetry(ctx, overview.TelemetryURL)
	if err != nil {
		monitoring.PollFailuresTotal.WithLabelValues("telemetry").Inc()
		return err
	}

	enriched := p.processor.ProcessMatch(overview, events)
	if enriched == nil {
		monitoring.DuplicateMatchesTotal.Inc()
		return nil
	}
	monitoring.MatchesProcessedTotal.Inc()
	monitoring.EnrichedEventsTotal.Add(float64(len(enriched)))

	return p.persistArtifacts(ctx, matchID, enriched)
}

func (p *Poller) persistArtifacts(ctx context.Context, matchID string, enriched []telemetry.Event) error {
	if err := p.store.Persist(); err != nil {
		return err
	}

	summaries, err := p.store.EncodeMatches()
	if err != nil {
		return err
	}
	if err := p.cache.SetSummaries(ctx, summaries); err != nil {
		p.log.WithError(err).Warn("failed to mirror summaries to cache")
	}

	blob, err := json.MarshalIndent(enriched, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding combat log: %w", err)
	}
	if err := p.writeCombatLog(matchID, blob); err != nil {
		return err
	}
	if err := p.cache.SetMatch(ctx, matchID, blob); err != nil {
		p.log.WithError(err).WithField("match_id", matchID).Warn("failed to mirror combat log to cache")
	}

	for _, evictedID := range p.store.DrainEvicted() {
		monitoring.EvictionsTotal.Inc()
		if err := p.cache.DeleteMatch(ctx, evictedID); err != nil {
			p.log.WithError(err).WithField("match_id", evictedID).Warn("failed to invalidate evicted match")
		} else {
			p.log.WithField("match_id", evictedID).Info("evicted match invalidated")
		}
	}
	return nil
}

func (p *Poller) writeCombatLog(matchID string, blob []byte) error {
	dir := filepath.Join(p.dataDir, "matches")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating combat log directory: %w", err)
	}
	path := filepath.Join(dir, matchID+".json")
	if err := os.WriteFile(path, blob, 0644); err != nil {
		return fmt.Errorf("writing combat log: %w", err)
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
