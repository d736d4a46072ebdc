package astro

import (
	"testing"
	"time"
)

// clockAt returns a Clock whose wall time is fixed at the given UTC
// instant.
func clockAt(t time.Time) *Clock {
	c := NewClock(nil)
	c.Now = func() time.Time { return t }
	return c
}

func TestIsNightRome(t *testing.T) {
	const sunrise = "2024-06-01T05:50"
	const sunset = "2024-06-01T20:45"

	// Rome is UTC+2 in June: 03:00 UTC == 05:00 local, before sunrise.
	c := clockAt(time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC))
	if !c.IsNight("Europe/Rome", sunrise, sunset) {
		t.Error("expected night at 05:00 Rome time")
	}

	// 10:00 UTC == 12:00 local, full daylight.
	c = clockAt(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	if c.IsNight("Europe/Rome", sunrise, sunset) {
		t.Error("expected day at 12:00 Rome time")
	}

	// 19:30 UTC == 21:30 local, after sunset.
	c = clockAt(time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC))
	if !c.IsNight("Europe/Rome", sunrise, sunset) {
		t.Error("expected night at 21:30 Rome time")
	}
}

func TestIsNightAtSunsetBoundary(t *testing.T) {
	// Night holds at exactly sunset (now >= sunset), in UTC frame.
	c := clockAt(time.Date(2024, 6, 1, 20, 45, 0, 0, time.UTC))
	if !c.IsNight("UTC", "05:50", "20:45") {
		t.Error("expected night at exact sunset minute")
	}
	if c.IsNight("UTC", "20:45", "20:46") {
		t.Error("expected day at exact sunrise minute")
	}
}

func TestIsNightBareHHMMFragments(t *testing.T) {
	c := clockAt(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC))
	if !c.IsNight("UTC", "06:00", "21:00") {
		t.Error("expected night at 23:00 with HH:MM fragments")
	}
}

func TestInvalidTimezoneFallsBackToUTC(t *testing.T) {
	c := clockAt(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC))
	if !c.IsNight("Not/AZone", "06:00", "21:00") {
		t.Error("expected UTC fallback to still report night")
	}
	if c.IsNight("", "06:00", "21:00") != c.IsNight("UTC", "06:00", "21:00") {
		t.Error("empty timezone should behave like UTC")
	}
}

func TestInvalidSunriseSunsetAssumesDay(t *testing.T) {
	c := clockAt(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC))

	tests := []struct{ sunrise, sunset string }{
		{"", "21:00"},
		{"06:00", ""},
		{"garbage", "21:00"},
		{"06:00", "25:99"},
	}
	for _, tt := range tests {
		if c.IsNight("UTC", tt.sunrise, tt.sunset) {
			t.Errorf("IsNight(%q, %q) = true, want day fallback", tt.sunrise, tt.sunset)
		}
	}
}
