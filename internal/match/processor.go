package match

import (
	"github.com/sirupsen/logrus"

	"pubg-tracker/internal/pubg"
	"pubg-tracker/internal/telemetry"
)

// Ledger is the retention store gate the processor decides novelty with.
// Implemented by history.Store.
type Ledger interface {
	// AppendIfNew appends the summary unless its id is already present.
	// Returns false, without mutation, on a duplicate.
	AppendIfNew(summary Summary) bool
}

// Processor runs one match through the enrichment core: squad resolution,
// kill attribution, the novelty gate, and correlation. It is synchronous and
// single-threaded per match; correlation passes have chronological
// dependencies that forbid intra-match parallelism.
type Processor struct {
	tracked []string
	ledger  Ledger
	log     *logrus.Entry
}

// NewProcessor creates a processor for the tracked roster.
func NewProcessor(tracked []string, ledger Ledger) *Processor {
	return &Processor{
		tracked: tracked,
		ledger:  ledger,
		log:     logrus.WithField("component", "processor"),
	}
}

// ProcessMatch classifies the raw events, builds and appends the match
// summary, and — for matches not seen before — produces the enriched combat
// log. Returns nil for already-known matches; that is the idempotence
// guarantee, not an error.
func (p *Processor) ProcessMatch(overview *pubg.MatchOverview, events []telemetry.Event) []telemetry.Event {
	events = telemetry.DropUnknown(events)

	squads := telemetry.ResolveSquads(events)
	fullSquad := telemetry.FullSquad(squads, p.tracked)

	summary := BuildSummary(overview, fullSquad, events)
	if !p.ledger.AppendIfNew(summary) {
		p.log.WithField("match_id", overview.ID).Debug("match already processed, skipping enrichment")
		return nil
	}

	subjects := telemetry.SubjectEvents(events, p.tracked)
	correlator := telemetry.NewCorrelator(events)
	enriched := correlator.Enrich(subjects)
	if enriched == nil {
		// Nil is reserved for already-known matches. A new match without
		// tracked combat still produces a combat log, just an empty one.
		enriched = []telemetry.Event{}
	}

	p.log.WithFields(logrus.Fields{
		"match_id":   overview.ID,
		"map":        summary.MapName,
		"squad_size": len(summary.Squad),
		"events":     len(enriched),
	}).Info("match processed")

	return enriched
}
