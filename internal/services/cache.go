package services

import (
	"fmt"
	"sync"
	"time"

	"funweather/internal/models"
	"go.uber.org/zap"
)

// snapshotCache keeps recently fetched forecasts keyed by rounded
// coordinates so rapid re-renders don't hammer the provider.
type snapshotCache struct {
	mu       sync.RWMutex
	items    map[string]cacheItem
	duration time.Duration
	logger   *zap.Logger
}

type cacheItem struct {
	snapshot  models.WeatherSnapshot
	expiresAt time.Time
}

func newSnapshotCache(duration time.Duration, logger *zap.Logger) *snapshotCache {
	return &snapshotCache{
		items:    make(map[string]cacheItem),
		duration: duration,
		logger:   logger,
	}
}

// coordKey rounds to two decimals (~1km) so GPS jitter maps to the
// same cache slot.
func coordKey(c models.Coordinates) string {
	return fmt.Sprintf("%.2f,%.2f", c.Latitude, c.Longitude)
}

func (c *snapshotCache) get(coords models.Coordinates) (models.WeatherSnapshot, bool) {
	c.mu.RLock()
	item, ok := c.items[coordKey(coords)]
	c.mu.RUnlock()

	if !ok || time.Now().After(item.expiresAt) {
		return models.WeatherSnapshot{}, false
	}
	return item.snapshot, true
}

func (c *snapshotCache) set(coords models.Coordinates, snap models.WeatherSnapshot) {
	key := coordKey(coords)

	c.mu.Lock()
	c.items[key] = cacheItem{snapshot: snap, expiresAt: time.Now().Add(c.duration)}
	// Drop whatever expired while we're here; the map stays tiny.
	now := time.Now()
	for k, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, k)
		}
	}
	c.mu.Unlock()

	c.logger.Debug("Forecast cached", zap.String("coords", key))
}
