package pubg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"pubg-tracker/internal/config"
	"pubg-tracker/internal/telemetry"
)

const (
	acceptJSONAPI = "application/vnd.api+json"
)

// API key error sentinels, so callers can tell a dead key from transient
// failures.
var (
	ErrAPIKeyInvalid = errors.New("api key rejected (401/403)")
	ErrRateLimited   = errors.New("rate limited (429)")
)

// IsAPIKeyError reports whether err indicates a rejected API key.
func IsAPIKeyError(err error) bool {
	return errors.Is(err, ErrAPIKeyInvalid)
}

// Client is a rate-limited PUBG API client. The provider allows very few
// requests per minute on standard keys, so every call waits on the shared
// limiter before going out.
type Client struct {
	apiKey     string
	baseURL    string
	shard      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client from config. Telemetry CDN fetches bypass the
// limiter; only api.pubg.com calls count against the key.
func NewClient(cfg config.PUBGConfig) *Client {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 10
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: "https://api.pubg.com",
		shard:   cfg.Shard,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}
}

// PlayerMatches returns the recent match ids of the tracked players, newest
// first per player, in provider order.
func (c *Client) PlayerMatches(ctx context.Context, names []string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/shards/%s/players?filter[playerNames]=%s",
		c.baseURL, c.shard, joinQueryList(names))

	body, err := c.get(ctx, endpoint, true)
	if err != nil {
		return nil, fmt.Errorf("fetching player matches: %w", err)
	}

	var resp playersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed players payload: %w", err)
	}

	var matchIDs []string
	for _, player := range resp.Data {
		for _, m := range player.Relationships.Matches.Data {
			matchIDs = append(matchIDs, m.ID)
		}
	}
	return matchIDs, nil
}

// MatchOverview fetches and flattens one match's overview record.
func (c *Client) MatchOverview(ctx context.Context, matchID string) (*MatchOverview, error) {
	endpoint := fmt.Sprintf("%s/shards/%s/matches/%s", c.baseURL, c.shard, matchID)

	body, err := c.get(ctx, endpoint, true)
	if err != nil {
		return nil, fmt.Errorf("fetching match %s: %w", matchID, err)
	}
	return parseMatchOverview(body)
}

// Telemetry fetches and decodes the raw event log behind an overview's
// telemetry asset URL. The CDN needs no auth and no rate limiting.
func (c *Client) Telemetry(ctx context.Context, telemetryURL string) ([]telemetry.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, telemetryURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptJSONAPI)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching telemetry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching telemetry: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading telemetry: %w", err)
	}

	events, err := telemetry.ParseEvents(body)
	if err != nil {
		return nil, fmt.Errorf("malformed telemetry payload: %w", err)
	}
	return events, nil
}

// get performs a rate-limited authenticated GET against the API.
func (c *Client) get(ctx context.Context, endpoint string, auth bool) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptJSONAPI)
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("GET %s: %w", endpoint, ErrAPIKeyInvalid)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("GET %s: %w", endpoint, ErrRateLimited)
	default:
		return nil, fmt.Errorf("GET %s: status %d", endpoint, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
