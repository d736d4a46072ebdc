package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"funweather/internal/classify"
	"funweather/internal/format"
	"funweather/internal/location"
	"funweather/internal/models"
	"funweather/internal/store"
	"go.uber.org/zap"
)

// ForecastProvider is the outbound forecast capability.
type ForecastProvider interface {
	Fetch(ctx context.Context, coords models.Coordinates) (models.WeatherSnapshot, error)
}

// Presentation is everything the display layer needs for one render:
// the arbitrated location, the raw snapshot, the classified condition,
// and the backdrop asset key.
type Presentation struct {
	Location   models.LocationState   `json:"location"`
	Snapshot   models.WeatherSnapshot `json:"snapshot"`
	Condition  models.ConditionResult `json:"condition"`
	Background string                 `json:"background"`
	Display    Display                `json:"display"`
	Stale      bool                   `json:"stale"`
}

// Display carries the unit-converted strings for the main readouts, in
// the user's configured units and clock format.
type Display struct {
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
}

func buildDisplay(snap models.WeatherSnapshot, cfg models.Settings) Display {
	d := Display{
		Temperature: format.Temp(snap.CurrentTemperature, cfg),
		Wind:        format.Wind(snap.CurrentWindSpeed, cfg),
	}
	if len(snap.DailySunrise) > 0 {
		d.Sunrise = format.Time(snap.DailySunrise[0], true, cfg)
	}
	if len(snap.DailySunset) > 0 {
		d.Sunset = format.Time(snap.DailySunset[0], true, cfg)
	}
	return d
}

// Presenter orchestrates the pipeline: arbiter coordinates, forecast
// fetch, astronomical clock, condition classification.
type Presenter struct {
	forecast   ForecastProvider
	classifier *classify.Classifier
	arbiter    *location.Arbiter
	settings   *SettingsService
	cache      *snapshotCache
	kv         store.Store
	logger     *zap.Logger
}

func NewPresenter(
	forecast ForecastProvider,
	classifier *classify.Classifier,
	arbiter *location.Arbiter,
	settings *SettingsService,
	kv store.Store,
	cacheDuration time.Duration,
	logger *zap.Logger,
) *Presenter {
	return &Presenter{
		forecast:   forecast,
		classifier: classifier,
		arbiter:    arbiter,
		settings:   settings,
		cache:      newSnapshotCache(cacheDuration, logger),
		kv:         kv,
		logger:     logger,
	}
}

// Current produces the presentation for the arbitrated location. A
// forecast fetch failure falls back to the last good snapshot so stale
// data keeps displaying during retries.
func (p *Presenter) Current(ctx context.Context) (Presentation, error) {
	coords, ok := p.arbiter.Coordinates()
	if !ok {
		return Presentation{}, fmt.Errorf("no location available yet")
	}

	snap, stale, err := p.snapshotFor(ctx, coords)
	if err != nil {
		return Presentation{}, err
	}

	cfg := p.settings.Get()
	condition := p.classifier.Classify(snap, cfg)
	_, locState := p.arbiter.Snapshot()

	return Presentation{
		Location:   locState,
		Snapshot:   snap,
		Condition:  condition,
		Background: BackgroundKey(snap, condition.IsNight),
		Display:    buildDisplay(snap, cfg),
		Stale:      stale,
	}, nil
}

func (p *Presenter) snapshotFor(ctx context.Context, coords models.Coordinates) (models.WeatherSnapshot, bool, error) {
	if snap, ok := p.cache.get(coords); ok {
		return snap, false, nil
	}

	snap, err := p.forecast.Fetch(ctx, coords)
	if err == nil {
		p.cache.set(coords, snap)
		p.saveLastWeather(snap)
		return snap, false, nil
	}

	p.logger.Warn("Forecast fetch failed, trying last good snapshot", zap.Error(err))

	if last, ok := p.loadLastWeather(ctx); ok {
		return last, true, nil
	}
	return models.WeatherSnapshot{}, false, fmt.Errorf("forecast unavailable: %w", err)
}

// saveLastWeather persists the snapshot for offline display without
// blocking the render path.
func (p *Presenter) saveLastWeather(snap models.WeatherSnapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		p.logger.Warn("Failed to encode snapshot", zap.Error(err))
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.kv.Set(ctx, store.KeyLastWeather, string(payload)); err != nil {
			p.logger.Warn("Failed to persist snapshot", zap.Error(err))
		}
	}()
}

func (p *Presenter) loadLastWeather(ctx context.Context) (models.WeatherSnapshot, bool) {
	raw, ok, err := p.kv.Get(ctx, store.KeyLastWeather)
	if err != nil || !ok {
		return models.WeatherSnapshot{}, false
	}
	var snap models.WeatherSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		p.logger.Warn("Discarding corrupt stored snapshot", zap.Error(err))
		return models.WeatherSnapshot{}, false
	}
	return snap, true
}
