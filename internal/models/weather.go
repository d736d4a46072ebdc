package models

import (
	"time"
)

// DailyForecast is one day of the provider's daily block.
type DailyForecast struct {
	Date          string  `json:"date"`
	WeatherCode   int     `json:"weather_code"`
	TempMin       float64 `json:"temp_min"`
	TempMax       float64 `json:"temp_max"`
	WindSpeedMax  float64 `json:"wind_speed_max"`
	HumidityMax   float64 `json:"humidity_max"`
	PrecipProbMax float64 `json:"precip_prob_max"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
}

// HourlyForecast is one hour of the provider's hourly block.
type HourlyForecast struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weather_code"`
	PrecipProb  float64 `json:"precip_prob"`
}

// WeatherSnapshot is a read-only pass-through of the forecast provider's
// fields for a single classification pass. The core never mutates it.
type WeatherSnapshot struct {
	CurrentWeatherCode   int     `json:"current_weather_code"`
	CurrentTemperature   float64 `json:"current_temperature"`
	CurrentHumidity      float64 `json:"current_humidity"`
	CurrentWindSpeed     float64 `json:"current_wind_speed"`
	CurrentPrecipitation float64 `json:"current_precipitation"`
	CurrentSnowfall      float64 `json:"current_snowfall"`

	DailySunrise []string `json:"daily_sunrise"`
	DailySunset  []string `json:"daily_sunset"`

	Daily  []DailyForecast  `json:"daily"`
	Hourly []HourlyForecast `json:"hourly"`

	TimezoneID       string    `json:"timezone"`
	UTCOffsetSeconds int       `json:"utc_offset_seconds"`
	FetchedAt        time.Time `json:"fetched_at"`
}

// ConditionResult is the classifier's verdict for one snapshot.
// Recomputed on every new snapshot, never persisted.
type ConditionResult struct {
	ConditionKey string `json:"condition_key"`
	DisplayText  string `json:"display_text"`
	IsNight      bool   `json:"is_night"`
}
