package format

import (
	"fmt"
	"math"
	"time"

	"funweather/internal/models"
)

// Temp renders a temperature reading in the configured unit. The
// provider always reports Celsius.
func Temp(celsius float64, cfg models.Settings) string {
	if cfg.UnitTemp == "fahrenheit" {
		return fmt.Sprintf("%d°F", int(math.Round(celsius*9/5+32)))
	}
	return fmt.Sprintf("%d°C", int(math.Round(celsius)))
}

// Wind renders a wind speed in the configured unit. The provider
// always reports km/h.
func Wind(kmh float64, cfg models.Settings) string {
	if cfg.UnitWind == "mph" {
		return fmt.Sprintf("%d mph", int(math.Round(kmh/1.609)))
	}
	return fmt.Sprintf("%d km/h", int(math.Round(kmh)))
}

// Time renders an ISO-local timestamp in the configured clock format.
// withMinutes controls whether minutes appear; the 24h hour carries no
// leading zero, matching the app's compact hourly strip.
func Time(isoLocal string, withMinutes bool, cfg models.Settings) string {
	t, err := parseLocal(isoLocal)
	if err != nil {
		return ""
	}

	if cfg.TimeFormat == "12h" {
		suffix := "AM"
		hour := t.Hour()
		if hour >= 12 {
			suffix = "PM"
		}
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
		if withMinutes {
			return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), suffix)
		}
		return fmt.Sprintf("%d %s", hour, suffix)
	}

	if withMinutes {
		return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%d", t.Hour())
}

func parseLocal(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
