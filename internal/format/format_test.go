package format

import (
	"testing"

	"funweather/internal/models"
)

func TestTemp(t *testing.T) {
	c := models.Settings{UnitTemp: "celsius"}
	f := models.Settings{UnitTemp: "fahrenheit"}

	if got := Temp(21.4, c); got != "21°C" {
		t.Errorf("got %q", got)
	}
	if got := Temp(21.6, c); got != "22°C" {
		t.Errorf("got %q", got)
	}
	if got := Temp(0, f); got != "32°F" {
		t.Errorf("got %q", got)
	}
	if got := Temp(100, f); got != "212°F" {
		t.Errorf("got %q", got)
	}
}

func TestWind(t *testing.T) {
	if got := Wind(32.3, models.Settings{UnitWind: "kmh"}); got != "32 km/h" {
		t.Errorf("got %q", got)
	}
	if got := Wind(32.18, models.Settings{UnitWind: "mph"}); got != "20 mph" {
		t.Errorf("got %q", got)
	}
}

func TestTime(t *testing.T) {
	h24 := models.Settings{TimeFormat: "24h"}
	h12 := models.Settings{TimeFormat: "12h"}

	tests := []struct {
		in          string
		withMinutes bool
		cfg         models.Settings
		want        string
	}{
		{"2024-06-01T13:05", true, h24, "13:05"},
		{"2024-06-01T13:05", false, h24, "13"},
		{"2024-06-01T13:05", true, h12, "1:05 PM"},
		{"2024-06-01T00:30", true, h12, "12:30 AM"},
		{"2024-06-01T12:00", false, h12, "12 PM"},
		{"09:07", true, h24, "9:07"},
		{"garbage", true, h24, ""},
	}
	for _, tt := range tests {
		if got := Time(tt.in, tt.withMinutes, tt.cfg); got != tt.want {
			t.Errorf("Time(%q, %v) = %q, want %q", tt.in, tt.withMinutes, got, tt.want)
		}
	}
}
