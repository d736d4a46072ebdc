package client

import (
	"context"
	"fmt"
	"time"

	"funweather/internal/models"
	"go.uber.org/zap"
)

// ForecastClient fetches forecast data from the Open-Meteo forecast
// API for a coordinate pair.
type ForecastClient struct {
	*BaseClient
	baseURL string
}

const forecastFields = "daily=weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset," +
	"daylight_duration,precipitation_sum,precipitation_probability_max,wind_speed_10m_max,relative_humidity_2m_max" +
	"&hourly=temperature_2m,relative_humidity_2m,precipitation_probability,weather_code,visibility," +
	"wind_speed_10m,snowfall,precipitation" +
	"&current=temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m,snowfall" +
	"&timezone=auto&forecast_days=4"

type openMeteoForecastResponse struct {
	UTCOffsetSeconds int    `json:"utc_offset_seconds"`
	Timezone         string `json:"timezone"`
	Current          struct {
		Time               string  `json:"time"`
		Temperature2M      float64 `json:"temperature_2m"`
		RelativeHumidity2M float64 `json:"relative_humidity_2m"`
		Precipitation      float64 `json:"precipitation"`
		WeatherCode        int     `json:"weather_code"`
		WindSpeed10M       float64 `json:"wind_speed_10m"`
		Snowfall           float64 `json:"snowfall"`
	} `json:"current"`
	Daily struct {
		Time                        []string  `json:"time"`
		WeatherCode                 []int     `json:"weather_code"`
		Temperature2MMax            []float64 `json:"temperature_2m_max"`
		Temperature2MMin            []float64 `json:"temperature_2m_min"`
		Sunrise                     []string  `json:"sunrise"`
		Sunset                      []string  `json:"sunset"`
		PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
		WindSpeed10MMax             []float64 `json:"wind_speed_10m_max"`
		RelativeHumidity2MMax       []float64 `json:"relative_humidity_2m_max"`
	} `json:"daily"`
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2M            []float64 `json:"temperature_2m"`
		WeatherCode              []int     `json:"weather_code"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
	} `json:"hourly"`
}

func NewForecastClient(config ClientConfig, logger *zap.Logger) *ForecastClient {
	return &ForecastClient{
		BaseClient: NewBaseClient("openmeteo-forecast", config, logger),
		baseURL:    "https://api.open-meteo.com/v1",
	}
}

// SetBaseURL points the client at a different endpoint. Used in tests.
func (c *ForecastClient) SetBaseURL(url string) {
	c.baseURL = url
}

// Fetch retrieves the forecast for the given coordinates and maps it
// into a WeatherSnapshot pass-through.
func (c *ForecastClient) Fetch(ctx context.Context, coords models.Coordinates) (models.WeatherSnapshot, error) {
	url := fmt.Sprintf("%s/forecast?latitude=%.4f&longitude=%.4f&%s",
		c.baseURL, coords.Latitude, coords.Longitude, forecastFields)

	var resp openMeteoForecastResponse
	if err := c.GetJSON(ctx, url, &resp); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	snap := models.WeatherSnapshot{
		CurrentWeatherCode:   resp.Current.WeatherCode,
		CurrentTemperature:   resp.Current.Temperature2M,
		CurrentHumidity:      resp.Current.RelativeHumidity2M,
		CurrentWindSpeed:     resp.Current.WindSpeed10M,
		CurrentPrecipitation: resp.Current.Precipitation,
		CurrentSnowfall:      resp.Current.Snowfall,
		DailySunrise:         resp.Daily.Sunrise,
		DailySunset:          resp.Daily.Sunset,
		TimezoneID:           resp.Timezone,
		UTCOffsetSeconds:     resp.UTCOffsetSeconds,
		FetchedAt:            time.Now().UTC(),
	}

	for i := range resp.Daily.Time {
		day := models.DailyForecast{Date: resp.Daily.Time[i]}
		if i < len(resp.Daily.WeatherCode) {
			day.WeatherCode = resp.Daily.WeatherCode[i]
		}
		if i < len(resp.Daily.Temperature2MMin) {
			day.TempMin = resp.Daily.Temperature2MMin[i]
		}
		if i < len(resp.Daily.Temperature2MMax) {
			day.TempMax = resp.Daily.Temperature2MMax[i]
		}
		if i < len(resp.Daily.WindSpeed10MMax) {
			day.WindSpeedMax = resp.Daily.WindSpeed10MMax[i]
		}
		if i < len(resp.Daily.RelativeHumidity2MMax) {
			day.HumidityMax = resp.Daily.RelativeHumidity2MMax[i]
		}
		if i < len(resp.Daily.PrecipitationProbabilityMax) {
			day.PrecipProbMax = resp.Daily.PrecipitationProbabilityMax[i]
		}
		if i < len(resp.Daily.Sunrise) {
			day.Sunrise = resp.Daily.Sunrise[i]
		}
		if i < len(resp.Daily.Sunset) {
			day.Sunset = resp.Daily.Sunset[i]
		}
		snap.Daily = append(snap.Daily, day)
	}

	for i := range resp.Hourly.Time {
		hour := models.HourlyForecast{Time: resp.Hourly.Time[i]}
		if i < len(resp.Hourly.Temperature2M) {
			hour.Temperature = resp.Hourly.Temperature2M[i]
		}
		if i < len(resp.Hourly.WeatherCode) {
			hour.WeatherCode = resp.Hourly.WeatherCode[i]
		}
		if i < len(resp.Hourly.PrecipitationProbability) {
			hour.PrecipProb = resp.Hourly.PrecipitationProbability[i]
		}
		snap.Hourly = append(snap.Hourly, hour)
	}

	return snap, nil
}
