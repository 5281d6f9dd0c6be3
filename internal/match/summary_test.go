package match

import (
	"testing"

	"pubg-tracker/internal/pubg"
	"pubg-tracker/internal/telemetry"
)

func intPtr(v int) *int { return &v }

func killEvent(finisher string, attackID *int) telemetry.Event {
	return telemetry.Event{
		Action:   telemetry.ActionPlayerKill,
		AttackID: attackID,
		Finisher: &telemetry.Target{Name: finisher},
		Victim:   &telemetry.Target{Name: "someone"},
	}
}

func TestMergeKills(t *testing.T) {
	squad := []pubg.PlayerStats{
		{Name: "alpha", Kills: 7}, // provider-reported count, to be discarded
		{Name: "bravo", Kills: 2},
	}

	events := []telemetry.Event{
		killEvent("alpha", intPtr(telemetry.NoAttackID)),
		killEvent("alpha", intPtr(telemetry.NoAttackID)),
		// A kill with a distinct originating attack is a chained kill and
		// must not count as a finishing blow.
		killEvent("alpha", intPtr(42)),
		// Missing attack id does not count either.
		killEvent("alpha", nil),
		// Finisher outside the squad.
		killEvent("stranger", intPtr(telemetry.NoAttackID)),
		// Kill event with no finisher block.
		{Action: telemetry.ActionPlayerKill, AttackID: intPtr(telemetry.NoAttackID)},
		// Non-kill events are ignored even with a finisher shape.
		{Action: telemetry.ActionPlayerTakeDamage, AttackID: intPtr(telemetry.NoAttackID),
			Finisher: &telemetry.Target{Name: "alpha"}},
	}

	MergeKills(squad, events)

	if squad[0].Kills != 2 {
		t.Errorf("alpha kills = %d, want 2", squad[0].Kills)
	}
	if squad[1].Kills != 0 {
		t.Errorf("bravo kills = %d, want 0 (provider count discarded)", squad[1].Kills)
	}

	// Running the merge again must not change the counts.
	MergeKills(squad, events)
	if squad[0].Kills != 2 || squad[1].Kills != 0 {
		t.Errorf("merge not idempotent: alpha=%d bravo=%d", squad[0].Kills, squad[1].Kills)
	}
}

func TestBuildSummary(t *testing.T) {
	overview := &pubg.MatchOverview{
		ID:        "match-1",
		CreatedAt: "2024-03-01T12:00:00Z",
		GameMode:  "squad-fpp",
		MapName:   "Baltic_Main",
		Participants: []pubg.PlayerStats{
			{Name: "alpha", Kills: 9},
			{Name: "bravo", Kills: 1},
			{Name: "stranger", Kills: 5},
		},
	}

	events := []telemetry.Event{
		killEvent("alpha", intPtr(telemetry.NoAttackID)),
	}

	summary := BuildSummary(overview, []string{"alpha", "bravo"}, events)

	if summary.ID != "match-1" {
		t.Errorf("id = %q", summary.ID)
	}
	if summary.MapName != "Erangel" {
		t.Errorf("map = %q, want Erangel", summary.MapName)
	}
	if len(summary.Squad) != 2 {
		t.Fatalf("squad size = %d, want 2 (strangers excluded)", len(summary.Squad))
	}
	if summary.Squad[0].Name != "alpha" || summary.Squad[0].Kills != 1 {
		t.Errorf("alpha = %+v, want 1 recounted kill", summary.Squad[0])
	}
	if summary.Squad[1].Kills != 0 {
		t.Errorf("bravo kills = %d, want 0", summary.Squad[1].Kills)
	}
}

func TestBuildSummaryUnknownMap(t *testing.T) {
	overview := &pubg.MatchOverview{ID: "match-2", MapName: "Next_Patch_Main"}
	summary := BuildSummary(overview, nil, nil)
	if summary.MapName != telemetry.UnknownName {
		t.Errorf("map = %q, want %q", summary.MapName, telemetry.UnknownName)
	}
}
