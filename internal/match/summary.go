package match

import (
	"pubg-tracker/internal/pubg"
	"pubg-tracker/internal/telemetry"
)

// Summary is one match's entry in the retention ledger. It is created once,
// finalized by the kill merger, and never mutated after it is appended.
type Summary struct {
	ID       string             `json:"id"`
	Date     string             `json:"date"`
	GameMode string             `json:"game_mode"`
	MapName  string             `json:"map_name"`
	Squad    []pubg.PlayerStats `json:"squad"`
}

// BuildSummary assembles a match summary for the resolved full squad: the
// overview's participant stats filtered to squad members, with kill counts
// replaced by telemetry-derived finishing-blow kills.
func BuildSummary(overview *pubg.MatchOverview, fullSquad []string, events []telemetry.Event) Summary {
	var squad []pubg.PlayerStats
	for _, p := range overview.Participants {
		if containsName(fullSquad, p.Name) {
			squad = append(squad, p)
		}
	}

	MergeKills(squad, events)

	return Summary{
		ID:       overview.ID,
		Date:     overview.CreatedAt,
		GameMode: overview.GameMode,
		MapName:  telemetry.MapNames.Translate(overview.MapName),
		Squad:    squad,
	}
}

// MergeKills discards the provider-reported kill counters and recounts them
// from telemetry. Only direct finishing blows count: a PlayerKill whose
// attack id is the -1 sentinel had no separate triggering attack, so chained
// kills (knocked by one cause, finished by another) are not double counted.
// Resetting before recounting makes the merge idempotent.
func MergeKills(squad []pubg.PlayerStats, events []telemetry.Event) {
	for i := range squad {
		squad[i].Kills = 0
	}

	for _, e := range events {
		if e.Action != telemetry.ActionPlayerKill || e.Finisher == nil || e.AttackID == nil {
			continue
		}
		if *e.AttackID != telemetry.NoAttackID {
			continue
		}
		for i := range squad {
			if squad[i].Name == e.Finisher.Name {
				squad[i].Kills++
			}
		}
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
