package telemetry

// SubjectEvents selects the damage-relevant events concerning tracked
// players: take-damage and armor-destroy events where a tracked player is
// attacker or victim, and kill events where a tracked player appears in any
// combatant role. The returned slice owns copies, so enrichment never
// aliases the scanned sequence.
func SubjectEvents(events []Event, tracked []string) []Event {
	var subjects []Event
	for _, e := range events {
		switch e.Action {
		case ActionPlayerTakeDamage, ActionArmorDestroy:
			if targetTracked(tracked, e.Attacker, e.Victim) {
				subjects = append(subjects, e)
			}
		case ActionPlayerKill:
			if targetTracked(tracked, e.Attacker, e.Victim, e.DBNOMaker, e.Finisher, e.Killer) {
				subjects = append(subjects, e)
			}
		}
	}
	return subjects
}

func targetTracked(tracked []string, targets ...*Target) bool {
	for _, t := range targets {
		if t == nil {
			continue
		}
		if containsName(tracked, t.Name) {
			return true
		}
	}
	return false
}
