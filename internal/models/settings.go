package models

// Settings is the explicit user-preference object passed into the
// classifier, ranker, and formatters. Persisted under the "settings"
// key-value entry.
type Settings struct {
	Language   string `json:"language"`    // "it" or "en"
	UnitTemp   string `json:"unit_temp"`   // "celsius" or "fahrenheit"
	UnitWind   string `json:"unit_wind"`   // "kmh" or "mph"
	TimeFormat string `json:"time_format"` // "24h" or "12h"
}

// DefaultSettings mirrors the app's first-launch preferences.
func DefaultSettings() Settings {
	return Settings{
		Language:   "it",
		UnitTemp:   "celsius",
		UnitWind:   "kmh",
		TimeFormat: "24h",
	}
}
