package location

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"funweather/internal/models"
	"funweather/internal/store"
	"go.uber.org/zap"
)

// State names the arbiter's position in its lifecycle.
type State string

const (
	StateEmpty      State = "empty"
	StateCached     State = "cached"
	StateTracking   State = "tracking"
	StateOverridden State = "overridden"
)

const (
	// DefaultMinDistanceKM is the minimum movement between accepted
	// watch fixes; closer fixes are treated as GPS noise.
	DefaultMinDistanceKM = 10.0

	acquireTimeout = 30 * time.Second
	reverseTimeout = 10 * time.Second
	persistTimeout = 5 * time.Second
)

// Arbiter owns the current location, reconciling the cached value, the
// live GPS stream, and manual selection. Precedence: a manual override
// is authoritative over any GPS fix until explicitly released.
type Arbiter struct {
	mu sync.Mutex

	source  PositionSource
	reverse ReverseGeocoder
	cache   store.Store
	logger  *zap.Logger

	minDistanceKM float64

	state      State
	loc        models.LocationState
	sub        Subscription
	generation uint64 // bumps invalidate in-flight callbacks and fixes
}

func NewArbiter(source PositionSource, reverse ReverseGeocoder, cache store.Store, logger *zap.Logger) *Arbiter {
	return &Arbiter{
		source:        source,
		reverse:       reverse,
		cache:         cache,
		logger:        logger,
		minDistanceKM: DefaultMinDistanceKM,
		state:         StateEmpty,
		loc:           models.LocationState{Source: models.SourceNone},
	}
}

// SetMinDistanceKM overrides the movement threshold. Call before Load
// or Track.
func (a *Arbiter) SetMinDistanceKM(km float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if km > 0 {
		a.minDistanceKM = km
	}
}

// cachedLocation is the persisted shape under the last_location key.
type cachedLocation struct {
	Coordinates *models.Coordinates `json:"coordinates"`
	Place       *models.Place       `json:"place"`
}

// Load populates state from the cache synchronously, then kicks off
// live acquisition in the background so the display is never blocked
// on a GPS fix.
func (a *Arbiter) Load(ctx context.Context) {
	raw, ok, err := a.cache.Get(ctx, store.KeyLastLocation)
	if err != nil {
		a.logger.Warn("Failed to read cached location", zap.Error(err))
	}
	if ok && err == nil {
		var cached cachedLocation
		if err := json.Unmarshal([]byte(raw), &cached); err != nil {
			a.logger.Warn("Discarding corrupt cached location", zap.Error(err))
		} else if cached.Coordinates != nil {
			a.mu.Lock()
			a.state = StateCached
			a.loc = models.LocationState{
				Coordinates: cached.Coordinates,
				Place:       cached.Place,
				Source:      models.SourceCache,
			}
			a.mu.Unlock()
			a.logger.Info("Location restored from cache")
		}
	}

	go a.Track(context.Background())
}

// Track performs live acquisition: permission, one-shot fix, reverse
// lookup, then a continuous watch. Also the "use current location"
// action releasing a manual override.
func (a *Arbiter) Track(ctx context.Context) {
	a.mu.Lock()
	a.generation++
	gen := a.generation
	a.stopWatchLocked()
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	granted, err := a.source.RequestPermission(ctx)
	if err != nil {
		a.recordError(gen, models.ErrAcquisitionFailure)
		a.logger.Warn("Permission request failed", zap.Error(err))
		return
	}
	if !granted {
		a.recordError(gen, models.ErrPermissionDenied)
		a.logger.Warn("Location permission denied")
		return
	}

	pos, err := a.source.CurrentPosition(ctx)
	if err != nil {
		a.recordError(gen, models.ErrAcquisitionFailure)
		a.logger.Warn("Position acquisition failed", zap.Error(err))
		return
	}

	place, err := a.lookupPlace(pos)
	if err != nil {
		a.recordError(gen, models.ErrAcquisitionFailure)
		a.logger.Warn("Reverse geocode failed", zap.Error(err))
		return
	}

	a.mu.Lock()
	if gen != a.generation {
		// A manual selection (or a newer Track) superseded this
		// acquisition while it was in flight.
		a.mu.Unlock()
		return
	}
	a.state = StateTracking
	a.loc = models.LocationState{
		Coordinates: &pos,
		Place:       place,
		Source:      models.SourceGPS,
	}
	a.mu.Unlock()

	a.persist(pos, place)
	a.logger.Info("Tracking live location",
		zap.Float64("lat", pos.Latitude),
		zap.Float64("lon", pos.Longitude))

	sub, err := a.source.Watch(func(c models.Coordinates) {
		a.onFix(gen, c)
	})
	if err != nil {
		a.logger.Warn("Failed to start position watch", zap.Error(err))
		return
	}

	a.mu.Lock()
	if gen != a.generation {
		a.mu.Unlock()
		sub.Stop()
		return
	}
	a.sub = sub
	a.mu.Unlock()
}

// onFix handles one watch callback. The generation and override state
// are checked synchronously before any update is applied, so a fix
// delivered after an override was set can never overwrite it.
func (a *Arbiter) onFix(gen uint64, c models.Coordinates) {
	a.mu.Lock()
	if gen != a.generation || a.state != StateTracking {
		a.mu.Unlock()
		return
	}
	if a.loc.Coordinates != nil && distanceKM(*a.loc.Coordinates, c) < a.minDistanceKM {
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()

	place, err := a.lookupPlace(c)
	if err != nil {
		// Keep the previously displayed location; surface the signal.
		a.recordError(gen, models.ErrAcquisitionFailure)
		a.logger.Warn("Reverse geocode failed", zap.Error(err))
		return
	}

	a.mu.Lock()
	if gen != a.generation || a.state != StateTracking {
		a.mu.Unlock()
		return
	}
	a.loc.Coordinates = &c
	a.loc.Place = place
	a.loc.Source = models.SourceGPS
	a.loc.Err = models.ErrNone
	a.mu.Unlock()

	a.persist(c, place)
	a.logger.Debug("Applied watch fix",
		zap.Float64("lat", c.Latitude),
		zap.Float64("lon", c.Longitude))
}

// SetManual applies a city selected from search. The override is
// authoritative: any active watch stops and later fixes are ignored
// until Track is called again.
func (a *Arbiter) SetManual(city models.GeoPlace) {
	coords := models.Coordinates{Latitude: city.Latitude, Longitude: city.Longitude}
	place := &models.Place{City: city.Name, Country: city.Country}

	a.mu.Lock()
	a.generation++
	a.stopWatchLocked()
	a.state = StateOverridden
	a.loc = models.LocationState{
		Coordinates: &coords,
		Place:       place,
		Source:      models.SourceManual,
	}
	a.mu.Unlock()

	a.persist(coords, place)
	a.logger.Info("Manual location selected",
		zap.String("city", city.Name),
		zap.String("country", city.Country))
}

// UseCurrentLocation releases a manual override and resumes live
// tracking. The previous coordinates stay visible until the new fix
// lands.
func (a *Arbiter) UseCurrentLocation(ctx context.Context) {
	a.Track(ctx)
}

// StopTracking tears down any active watch. Safe to call repeatedly
// and with no subscription active; in-flight callbacks are invalidated
// by the generation bump.
func (a *Arbiter) StopTracking() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.generation++
	a.stopWatchLocked()
}

func (a *Arbiter) stopWatchLocked() {
	if a.sub != nil {
		a.sub.Stop()
		a.sub = nil
	}
}

// Snapshot returns the current lifecycle state and a copy of the
// location state.
func (a *Arbiter) Snapshot() (State, models.LocationState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state, a.loc
}

// Coordinates returns the displayed coordinates, if any.
func (a *Arbiter) Coordinates() (models.Coordinates, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loc.Coordinates == nil {
		return models.Coordinates{}, false
	}
	return *a.loc.Coordinates, true
}

// recordError surfaces a recoverable signal without touching existing
// cached or manual data.
func (a *Arbiter) recordError(gen uint64, kind models.ErrorKind) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.generation {
		return
	}
	a.loc.Err = kind
}

func (a *Arbiter) lookupPlace(c models.Coordinates) (*models.Place, error) {
	ctx, cancel := context.WithTimeout(context.Background(), reverseTimeout)
	defer cancel()

	place, err := a.reverse.ReverseGeocode(ctx, c)
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// persist writes the committed location to the cache without blocking
// the state transition that triggered it.
func (a *Arbiter) persist(coords models.Coordinates, place *models.Place) {
	payload, err := json.Marshal(cachedLocation{Coordinates: &coords, Place: place})
	if err != nil {
		a.logger.Warn("Failed to encode location for cache", zap.Error(err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := a.cache.Set(ctx, store.KeyLastLocation, string(payload)); err != nil {
			a.logger.Warn("Failed to persist location", zap.Error(err))
		}
	}()
}
