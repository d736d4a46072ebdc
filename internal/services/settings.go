package services

import (
	"context"
	"encoding/json"
	"sync"

	"funweather/internal/i18n"
	"funweather/internal/models"
	"funweather/internal/store"
	"go.uber.org/zap"
)

// SettingsService owns the user preference object, persisting it under
// the settings key and handing out copies to the classifier, ranker,
// and formatters.
type SettingsService struct {
	mu       sync.RWMutex
	settings models.Settings
	kv       store.Store
	logger   *zap.Logger
}

func NewSettingsService(kv store.Store, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settings: models.DefaultSettings(),
		kv:       kv,
		logger:   logger,
	}
}

// Load restores persisted preferences, keeping defaults for anything
// missing or unreadable.
func (s *SettingsService) Load(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, store.KeySettings)
	if err != nil {
		s.logger.Warn("Failed to read settings", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	var saved models.Settings
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.logger.Warn("Discarding corrupt settings", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if saved.Language != "" {
		s.settings.Language = i18n.NormalizeLang(saved.Language)
	}
	if saved.UnitTemp != "" {
		s.settings.UnitTemp = saved.UnitTemp
	}
	if saved.UnitWind != "" {
		s.settings.UnitWind = saved.UnitWind
	}
	if saved.TimeFormat != "" {
		s.settings.TimeFormat = saved.TimeFormat
	}
}

// Get returns a copy of the current settings.
func (s *SettingsService) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update replaces the preferences and persists them without blocking
// the caller.
func (s *SettingsService) Update(next models.Settings) {
	next.Language = i18n.NormalizeLang(next.Language)

	s.mu.Lock()
	s.settings = next
	s.mu.Unlock()

	payload, err := json.Marshal(next)
	if err != nil {
		s.logger.Warn("Failed to encode settings", zap.Error(err))
		return
	}
	go func() {
		if err := s.kv.Set(context.Background(), store.KeySettings, string(payload)); err != nil {
			s.logger.Warn("Failed to persist settings", zap.Error(err))
		}
	}()
}
