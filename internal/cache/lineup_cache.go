package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
)

// DefaultLineupTTL applies when no TTL is configured.
const DefaultLineupTTL = 6 * time.Hour

// Key identifies one cached season lineup. Through is the last week the
// lineup covers, so a live season gets a fresh key each completed week.
type Key struct {
	LeagueID int
	Season   int
	TeamID   int
	Source   string
	Mode     lineup.Mode
	Through  int
}

func (k Key) String() string {
	return fmt.Sprintf("ffwrapped:lineup:%d:%d:%d:%s:%s:w%d", k.LeagueID, k.Season, k.TeamID, k.Source, k.Mode, k.Through)
}

// LineupCache stores season lineups as JSON blobs.
type LineupCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLineupCache(client *redis.Client, ttl time.Duration) *LineupCache {
	if ttl <= 0 {
		ttl = DefaultLineupTTL
	}
	return &LineupCache{client: client, ttl: ttl}
}

// Get returns the cached lineup, or false on a miss.
func (c *LineupCache) Get(ctx context.Context, key Key) (*models.SeasonLineup, bool, error) {
	data, err := c.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var season models.SeasonLineup
	if err := json.Unmarshal(data, &season); err != nil {
		return nil, false, fmt.Errorf("unmarshaling lineup: %w", err)
	}
	return &season, true, nil
}

func (c *LineupCache) Set(ctx context.Context, key Key, season *models.SeasonLineup) error {
	data, err := json.Marshal(season)
	if err != nil {
		return fmt.Errorf("marshaling lineup: %w", err)
	}
	return c.client.Set(ctx, key.String(), data, c.ttl).Err()
}

// Invalidate drops every cached lineup for a league season.
func (c *LineupCache) Invalidate(ctx context.Context, leagueID, season int) error {
	pattern := fmt.Sprintf("ffwrapped:lineup:%d:%d:*", leagueID, season)

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
