package pubg

import (
	"encoding/json"
	"fmt"
)

// PlayerStats is the per-participant stat block of a match overview, re-used
// verbatim as the squad entries of a match summary. Field names follow the
// provider's wire format.
type PlayerStats struct {
	Kills        int     `json:"kills"`
	DBNOs        int     `json:"DBNOs"`
	Assists      int     `json:"assists"`
	Boosts       int     `json:"boosts"`
	DamageDealt  float64 `json:"damageDealt"`
	DeathType    string  `json:"deathType"`
	Name         string  `json:"name"`
	PlayerID     string  `json:"playerId"`
	RideDistance float64 `json:"rideDistance"`
	KillPlace    int     `json:"killPlace"`
	WinPlace     int     `json:"winPlace"`
}

// RosterStats is the per-roster block of a match overview.
type RosterStats struct {
	Rank   int `json:"rank"`
	TeamID int `json:"teamId"`
}

// MatchOverview is the flattened match record assembled from the provider's
// JSON:API envelope: attributes plus the participant, roster and asset
// blocks of the "included" array.
type MatchOverview struct {
	ID           string
	CreatedAt    string
	GameMode     string
	MapName      string // raw map code, translated during summary building
	Participants []PlayerStats
	Rosters      []RosterStats
	TelemetryURL string
}

// Wire shapes of the JSON:API match payload.

type matchResponse struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			CreatedAt string `json:"createdAt"`
			GameMode  string `json:"gameMode"`
			MapName   string `json:"mapName"`
		} `json:"attributes"`
	} `json:"data"`
	Included []includedBlock `json:"included"`
}

// includedBlock is one polymorphic element of the "included" array; its
// attributes are decoded per Type.
type includedBlock struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	Attributes json.RawMessage `json:"attributes"`
}

type assetAttributes struct {
	URL string `json:"URL"`
}

type participantAttributes struct {
	Stats PlayerStats `json:"stats"`
}

type rosterAttributes struct {
	Stats RosterStats `json:"stats"`
}

// parseMatchOverview flattens the raw match payload. A payload that does not
// match the expected shape is malformed input and fails the whole match.
func parseMatchOverview(raw []byte) (*MatchOverview, error) {
	var resp matchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("malformed match payload: %w", err)
	}

	overview := &MatchOverview{
		ID:        resp.Data.ID,
		CreatedAt: resp.Data.Attributes.CreatedAt,
		GameMode:  resp.Data.Attributes.GameMode,
		MapName:   resp.Data.Attributes.MapName,
	}

	for _, block := range resp.Included {
		switch block.Type {
		case "asset":
			var attrs assetAttributes
			if err := json.Unmarshal(block.Attributes, &attrs); err != nil {
				return nil, fmt.Errorf("malformed asset block: %w", err)
			}
			overview.TelemetryURL = attrs.URL
		case "participant":
			var attrs participantAttributes
			if err := json.Unmarshal(block.Attributes, &attrs); err != nil {
				return nil, fmt.Errorf("malformed participant block: %w", err)
			}
			overview.Participants = append(overview.Participants, attrs.Stats)
		case "roster":
			var attrs rosterAttributes
			if err := json.Unmarshal(block.Attributes, &attrs); err != nil {
				return nil, fmt.Errorf("malformed roster block: %w", err)
			}
			overview.Rosters = append(overview.Rosters, attrs.Stats)
		}
	}

	if overview.ID == "" {
		return nil, fmt.Errorf("malformed match payload: missing match id")
	}
	if overview.TelemetryURL == "" {
		return nil, fmt.Errorf("match %s has no telemetry asset", overview.ID)
	}
	return overview, nil
}

// Wire shapes of the players payload.

type playersResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Relationships struct {
			Matches struct {
				Data []struct {
					ID string `json:"id"`
				} `json:"data"`
			} `json:"matches"`
		} `json:"relationships"`
	} `json:"data"`
}
