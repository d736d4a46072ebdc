package classify

import (
	"strconv"

	"funweather/internal/astro"
	"funweather/internal/i18n"
	"funweather/internal/models"
)

// Threshold values for the special-condition overrides.
const (
	heatTempThreshold     = 30.0 // Celsius
	heatHumidityThreshold = 70.0 // percent
	highWindThreshold     = 40.0 // km/h
	freezeTempThreshold   = 0.0  // Celsius
)

var snowCodes = map[int]bool{71: true, 73: true, 75: true, 85: true, 86: true}

var rainCodes = map[int]bool{
	51: true, 53: true, 55: true,
	61: true, 63: true, 65: true,
	80: true, 81: true, 82: true,
}

// rule is one layer of the override chain. Rules are evaluated in
// order and a matching rule replaces the previously selected key and
// text: last match wins.
type rule struct {
	name  string
	match func(s models.WeatherSnapshot, night bool) bool
	key   string
	text  func(lang string) string
}

var overrides = []rule{
	{
		name: "heat-humidity",
		match: func(s models.WeatherSnapshot, _ bool) bool {
			return s.CurrentTemperature >= heatTempThreshold &&
				s.CurrentHumidity >= heatHumidityThreshold
		},
		// Key only: the base description stays visible.
		key: "afa_umidita",
	},
	{
		name: "high-wind",
		match: func(s models.WeatherSnapshot, _ bool) bool {
			return s.CurrentWindSpeed >= highWindThreshold
		},
		key: "vento_forte",
	},
	{
		name: "extreme-cold",
		match: func(s models.WeatherSnapshot, _ bool) bool {
			return s.CurrentTemperature <= freezeTempThreshold &&
				!snowCodes[s.CurrentWeatherCode]
		},
		key:  "FREDDISSIMO",
		text: func(lang string) string { return i18n.Text(lang, "freddissimo") },
	},
	{
		name: "night-clear",
		match: func(s models.WeatherSnapshot, night bool) bool {
			return night && (s.CurrentWeatherCode == 0 || s.CurrentWeatherCode == 1)
		},
		key:  "sereno_night",
		text: func(lang string) string { return i18n.Text(lang, "sereno_night") },
	},
	{
		name: "night-partly-cloudy",
		match: func(s models.WeatherSnapshot, night bool) bool {
			return night && s.CurrentWeatherCode == 2
		},
		key:  "parzialmente_nuvoloso_night",
		text: func(lang string) string { return i18n.Text(lang, "parz_nuvoloso_night") },
	},
	{
		name: "night-cloudy",
		match: func(s models.WeatherSnapshot, night bool) bool {
			return night && s.CurrentWeatherCode == 3
		},
		key:  "nuvoloso_night",
		text: func(lang string) string { return i18n.Text(lang, "nuvoloso_night") },
	},
	{
		name: "night-rain",
		match: func(s models.WeatherSnapshot, night bool) bool {
			return night && rainCodes[s.CurrentWeatherCode]
		},
		key:  "simpatica_pioggia_notturna",
		text: func(lang string) string { return i18n.Text(lang, "pioggia_night") },
	},
	{
		name: "night-wind",
		match: func(s models.WeatherSnapshot, night bool) bool {
			return night && s.CurrentWindSpeed >= highWindThreshold
		},
		key:  "affettuoso_vento_notturno",
		text: func(lang string) string { return i18n.Text(lang, "vento_night") },
	},
}

// Classifier maps a weather snapshot to a single canonical condition.
type Classifier struct {
	clock *astro.Clock
}

func NewClassifier(clock *astro.Clock) *Classifier {
	return &Classifier{clock: clock}
}

// Classify resolves the snapshot into one condition key and display
// text. The base code-to-text mapping comes first; each override layer
// may then replace it. Pure with respect to the snapshot: identical
// input yields identical output for a fixed wall clock.
func (c *Classifier) Classify(snap models.WeatherSnapshot, cfg models.Settings) models.ConditionResult {
	night := c.IsNight(snap)

	result := models.ConditionResult{
		ConditionKey: strconv.Itoa(snap.CurrentWeatherCode),
		DisplayText:  i18n.ConditionText(cfg.Language, snap.CurrentWeatherCode),
		IsNight:      night,
	}

	for _, r := range overrides {
		if r.match(snap, night) {
			result.ConditionKey = r.key
			if r.text != nil {
				result.DisplayText = r.text(cfg.Language)
			}
		}
	}

	return result
}

// IsNight evaluates the astronomical clock against the snapshot's own
// timezone and first-day sunrise/sunset. ConditionResult.IsNight is
// always this verdict, never an independent computation.
func (c *Classifier) IsNight(snap models.WeatherSnapshot) bool {
	var sunrise, sunset string
	if len(snap.DailySunrise) > 0 {
		sunrise = snap.DailySunrise[0]
	}
	if len(snap.DailySunset) > 0 {
		sunset = snap.DailySunset[0]
	}
	return c.clock.IsNight(snap.TimezoneID, sunrise, sunset)
}
