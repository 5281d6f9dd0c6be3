package telemetry

// ResolveSquads scans the match's PlayerCreate events into team id → member
// names. The feed has at-least-once delivery, so a name repeated across
// create events is appended again rather than deduplicated; downstream
// membership checks are unaffected.
func ResolveSquads(events []Event) map[int][]string {
	squads := make(map[int][]string)
	for _, e := range events {
		if e.Action != ActionPlayerCreate || e.Character == nil {
			continue
		}
		squads[e.Character.TeamID] = append(squads[e.Character.TeamID], e.Character.Name)
	}
	return squads
}

// FullSquad returns every member of any team that contains at least one
// tracked player. If no team does, the result is empty and downstream stat
// merging yields no match.
func FullSquad(squads map[int][]string, tracked []string) []string {
	var full []string
	for _, members := range squads {
		for _, name := range tracked {
			if containsName(members, name) {
				full = append(full, members...)
				break
			}
		}
	}
	return full
}

// MatchStartTime returns the timestamp of the MatchDefinition event, which
// anchors the match-relative clock. The second return is false if the match
// has no definition event.
func MatchStartTime(events []Event) (string, bool) {
	start := ""
	for _, e := range events {
		if e.Action == ActionMatchDefinition && e.Time != "" {
			start = e.Time
		}
	}
	return start, start != ""
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
