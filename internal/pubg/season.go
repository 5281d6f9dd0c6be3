package pubg

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SeasonGameMode is the game mode whose season aggregates are reported.
const SeasonGameMode = "squad-fpp"

// GameModeStats is one player's season aggregate block for a single game
// mode, as shipped by the provider.
type GameModeStats struct {
	Assists             int     `json:"assists"`
	Boosts              int     `json:"boosts"`
	DBNOs               int     `json:"dBNOs"`
	DailyKills          int     `json:"dailyKills"`
	DailyWins           int     `json:"dailyWins"`
	DamageDealt         float64 `json:"damageDealt"`
	Days                int     `json:"days"`
	HeadshotKills       int     `json:"headshotKills"`
	Heals               int     `json:"heals"`
	Kills               int     `json:"kills"`
	LongestKill         float64 `json:"longestKill"`
	LongestTimeSurvived int     `json:"longestTimeSurvived"`
	Losses              int     `json:"losses"`
	MaxKillStreaks      int     `json:"maxKillStreaks"`
	MostSurvivalTime    int     `json:"mostSurvivalTime"`
	RankPoints          int     `json:"rankPoints"`
	RankPointsTitle     string  `json:"rankPointsTitle"`
	Revives             int     `json:"revives"`
	RideDistance        float64 `json:"rideDistance"`
	RoadKills           int     `json:"roadKills"`
	RoundMostKills      int     `json:"roundMostKills"`
	RoundsPlayed        int     `json:"roundsPlayed"`
	Suicides            int     `json:"suicides"`
	SwimDistance        float64 `json:"swimDistance"`
	TeamKills           int     `json:"teamKills"`
	TimeSurvived        int     `json:"timeSurvived"`
	Top10s              int     `json:"top10s"`
	VehicleDestroys     int     `json:"vehicleDestroys"`
	WalkDistance        float64 `json:"walkDistance"`
	WeaponsAcquired     int     `json:"weaponsAcquired"`
	WeeklyKills         int     `json:"weeklyKills"`
	WeeklyWins          int     `json:"weeklyWins"`
	WinPoints           int     `json:"winPoints"`
	Wins                int     `json:"wins"`
}

type seasonResponse struct {
	Data []struct {
		Attributes struct {
			GameModeStats map[string]GameModeStats `json:"gameModeStats"`
		} `json:"attributes"`
		Relationships struct {
			Player struct {
				Data struct {
					ID string `json:"id"`
				} `json:"data"`
			} `json:"player"`
		} `json:"relationships"`
	} `json:"data"`
}

// PlayerIDs resolves tracked player names to their account ids, in the same
// order as names.
func (c *Client) PlayerIDs(ctx context.Context, names []string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/shards/%s/players?filter[playerNames]=%s",
		c.baseURL, c.shard, joinQueryList(names))

	body, err := c.get(ctx, endpoint, true)
	if err != nil {
		return nil, fmt.Errorf("fetching player ids: %w", err)
	}

	var resp playersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed players payload: %w", err)
	}

	ids := make([]string, 0, len(resp.Data))
	for _, player := range resp.Data {
		ids = append(ids, player.ID)
	}
	return ids, nil
}

// SeasonStats fetches the tracked players' season aggregates and reshapes
// them to a name → squad-fpp stat block map. Players with no squad-fpp
// games this season map to nil.
func (c *Client) SeasonStats(ctx context.Context, seasonID string, names, playerIDs []string) (map[string]*GameModeStats, error) {
	endpoint := fmt.Sprintf("%s/shards/%s/seasons/%s/gameMode/%s/players?filter[playerIds]=%s",
		c.baseURL, c.shard, seasonID, SeasonGameMode, joinQueryList(playerIDs))

	body, err := c.get(ctx, endpoint, true)
	if err != nil {
		return nil, fmt.Errorf("fetching season stats: %w", err)
	}

	var resp seasonResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed season payload: %w", err)
	}

	byID := make(map[string]*GameModeStats, len(resp.Data))
	for i := range resp.Data {
		entry := &resp.Data[i]
		if stats, ok := entry.Attributes.GameModeStats[SeasonGameMode]; ok {
			byID[entry.Relationships.Player.Data.ID] = &stats
		} else {
			byID[entry.Relationships.Player.Data.ID] = nil
		}
	}

	stats := make(map[string]*GameModeStats, len(names))
	for i, name := range names {
		if i < len(playerIDs) {
			stats[name] = byID[playerIDs[i]]
		} else {
			stats[name] = nil
		}
	}
	return stats, nil
}

func joinQueryList(values []string) string {
	return strings.Join(values, "%2C")
}
