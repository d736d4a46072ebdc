package services

import (
	"testing"

	"funweather/internal/models"
)

func TestBackgroundKey(t *testing.T) {
	tests := []struct {
		name  string
		snap  models.WeatherSnapshot
		night bool
		want  string
	}{
		{
			name: "clear day",
			snap: models.WeatherSnapshot{CurrentWeatherCode: 0, CurrentTemperature: 22},
			want: "soleggiato",
		},
		{
			name: "unknown code defaults to overcast",
			snap: models.WeatherSnapshot{CurrentWeatherCode: 42, CurrentTemperature: 22},
			want: "nuvoloso",
		},
		{
			name: "muggy heat",
			snap: models.WeatherSnapshot{CurrentWeatherCode: 1, CurrentTemperature: 32, CurrentHumidity: 75},
			want: "afa_umidita",
		},
		{
			name: "strong wind wins over heat",
			snap: models.WeatherSnapshot{CurrentWeatherCode: 1, CurrentTemperature: 32, CurrentHumidity: 75, CurrentWindSpeed: 45},
			want: "vento_forte",
		},
		{
			name: "freezing day",
			snap: models.WeatherSnapshot{CurrentWeatherCode: 3, CurrentTemperature: -2},
			want: "gelo",
		},
		{
			name:  "fog keeps its night variant",
			snap:  models.WeatherSnapshot{CurrentWeatherCode: 45, CurrentTemperature: 10},
			night: true,
			want:  "nebbia_night",
		},
		{
			name:  "partly cloudy night",
			snap:  models.WeatherSnapshot{CurrentWeatherCode: 2, CurrentTemperature: 15},
			night: true,
			want:  "parzialmente_nuvoloso_night",
		},
		{
			name:  "light rain night",
			snap:  models.WeatherSnapshot{CurrentWeatherCode: 53, CurrentTemperature: 12},
			night: true,
			want:  "pioggia_leggera_night",
		},
		{
			name:  "snow night",
			snap:  models.WeatherSnapshot{CurrentWeatherCode: 73, CurrentTemperature: -1},
			night: true,
			want:  "neve_night",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BackgroundKey(tt.snap, tt.night); got != tt.want {
				t.Errorf("BackgroundKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
