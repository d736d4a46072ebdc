package astro

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Clock derives day/night state from a timezone identifier and the
// provider's sunrise/sunset timestamps, independent of the host clock's
// own timezone. Now is injectable for tests; nil means time.Now.
type Clock struct {
	Now    func() time.Time
	logger *zap.Logger
}

func NewClock(logger *zap.Logger) *Clock {
	return &Clock{
		Now:    time.Now,
		logger: logger,
	}
}

// IsNight reports whether the wall clock in timezoneID is before
// sunrise or at/after sunset. Invalid timezones fall back to UTC;
// missing or unparseable sunrise/sunset default to "day".
func (c *Clock) IsNight(timezoneID, sunrise, sunset string) bool {
	srMin, srOK := minutesFromTimestamp(sunrise)
	ssMin, ssOK := minutesFromTimestamp(sunset)
	if !srOK || !ssOK {
		return false
	}

	nowMin := c.minutesNowIn(timezoneID)
	return nowMin < srMin || nowMin >= ssMin
}

// minutesNowIn converts the current wall clock into minutes since
// midnight within the given timezone. time.LoadLocation handles DST
// transitions, unlike fixed UTC-offset arithmetic.
func (c *Clock) minutesNowIn(timezoneID string) int {
	loc, err := time.LoadLocation(timezoneID)
	if err != nil || timezoneID == "" {
		if timezoneID != "" && c.logger != nil {
			c.logger.Warn("Invalid timezone, falling back to UTC",
				zap.String("timezone", timezoneID))
		}
		loc = time.UTC
	}

	now := c.now().In(loc)
	return now.Hour()*60 + now.Minute()
}

func (c *Clock) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// minutesFromTimestamp parses an ISO-local timestamp ("2006-01-02T15:04")
// or a bare "HH:MM" fragment into minutes since midnight.
func minutesFromTimestamp(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	timePart := s
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		timePart = s[i+1:]
	}

	parts := strings.Split(timePart, ":")
	if len(parts) < 2 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	minStr := parts[1]
	if len(minStr) > 2 {
		minStr = minStr[:2]
	}
	m, err := strconv.Atoi(minStr)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}
