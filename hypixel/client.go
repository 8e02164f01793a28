// Package hypixel resolves a Minecraft IGN to Skyblock profile stats.
// Two upstream calls: Mojang for the player UUID, then the Hypixel
// player endpoint. Both are unreliable and rate-limited; failures
// propagate to the caller without retry.
package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"skyblock-market/domain"
	"skyblock-market/errors"
)

const (
	DefaultMojangBase  = "https://api.mojang.com"
	DefaultHypixelBase = "https://api.hypixel.net"
)

type Client struct {
	log         *slog.Logger
	http        *http.Client
	apiKey      string
	mojangBase  string
	hypixelBase string
}

func NewClient(log *slog.Logger, apiKey, mojangBase, hypixelBase string, timeout time.Duration) *Client {
	return &Client{
		log:         log,
		http:        &http.Client{Timeout: timeout},
		apiKey:      apiKey,
		mojangBase:  mojangBase,
		hypixelBase: hypixelBase,
	}
}

type mojangProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type playerResponse struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause"`
	Player  *struct {
		Stats struct {
			SkyBlock map[string]any `json:"SkyBlock"`
		} `json:"stats"`
	} `json:"player"`
}

// Lookup builds the profile snapshot captured on a new listing.
func (c *Client) Lookup(ctx context.Context, ign string) (domain.ProfileSnapshot, error) {
	id, err := c.resolveUUID(ctx, ign)
	if err != nil {
		return domain.ProfileSnapshot{}, err
	}

	stats, err := c.fetchSkyblock(ctx, id)
	if err != nil {
		return domain.ProfileSnapshot{}, err
	}

	return domain.ProfileSnapshot{
		UUID:         id,
		Level:        domain.SkyblockLevel(intStat(stats, "experience")),
		SkillAverage: domain.SkillAverageOf(skillCounters(stats)),
		Networth:     stringStat(stats, "networth"),
		Playtime:     stringStat(stats, "playtime"),
	}, nil
}

func (c *Client) resolveUUID(ctx context.Context, ign string) (string, error) {
	endpoint := c.mojangBase + "/users/profiles/minecraft/" + url.PathEscape(ign)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrProfileLookupFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: mojang: %v", errors.ErrProfileLookupFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent, http.StatusNotFound:
		return "", fmt.Errorf("%w: %w: %q", errors.ErrProfileLookupFailed, errors.ErrUnknownPlayer, ign)
	default:
		return "", fmt.Errorf("%w: mojang status %d", errors.ErrProfileLookupFailed, resp.StatusCode)
	}

	var profile mojangProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return "", fmt.Errorf("%w: mojang body: %v", errors.ErrProfileLookupFailed, err)
	}
	if profile.ID == "" {
		return "", fmt.Errorf("%w: %w: %q", errors.ErrProfileLookupFailed, errors.ErrUnknownPlayer, ign)
	}
	return profile.ID, nil
}

func (c *Client) fetchSkyblock(ctx context.Context, playerUUID string) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/player?%s", c.hypixelBase, url.Values{
		"key":  {c.apiKey},
		"uuid": {playerUUID},
	}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrProfileLookupFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: hypixel: %v", errors.ErrProfileLookupFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: hypixel status %d", errors.ErrProfileLookupFailed, resp.StatusCode)
	}

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("%w: hypixel body: %v", errors.ErrProfileLookupFailed, err)
	}
	if !player.Success {
		return nil, fmt.Errorf("%w: hypixel: %s", errors.ErrProfileLookupFailed, player.Cause)
	}
	if player.Player == nil {
		c.log.Debug("Player has no Hypixel record", "uuid", playerUUID)
		return nil, nil
	}
	return player.Player.Stats.SkyBlock, nil
}

func skillCounters(stats map[string]any) map[string]int64 {
	counters := make(map[string]int64, len(stats))
	for key, value := range stats {
		if !strings.HasSuffix(key, "_xp") {
			continue
		}
		if n, ok := toInt64(value); ok {
			counters[key] = n
		}
	}
	return counters
}

func intStat(stats map[string]any, key string) int64 {
	n, _ := toInt64(stats[key])
	return n
}

func stringStat(stats map[string]any, key string) string {
	switch v := stats[key].(type) {
	case string:
		if v == "" {
			return domain.Unknown
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return domain.Unknown
	}
}

func toInt64(value any) (int64, bool) {
	// JSON numbers decode as float64
	n, ok := value.(float64)
	if !ok {
		return 0, false
	}
	return int64(n), true
}
