package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"lookmyshow/internal/models"
)

const eventListKey = "events:all"

// Cache keeps the full event list in Redis. Events are immutable while the
// service runs, so a short TTL only bounds staleness against out-of-band
// seeding.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Client: client, TTL: ttl}
}

// GetEvents returns the cached event list and whether it was present.
// Redis errors count as a miss; the caller falls through to the database.
func (c *Cache) GetEvents() ([]models.Event, bool) {
	raw, err := c.Client.Get(context.Background(), eventListKey).Result()
	if err != nil {
		return nil, false
	}

	var events []models.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, false
	}
	return events, true
}

// SetEvents stores the event list with the configured TTL.
func (c *Cache) SetEvents(events []models.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.Client.Set(context.Background(), eventListKey, raw, c.TTL).Err()
}
