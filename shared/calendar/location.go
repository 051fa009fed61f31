// Package calendar holds the application clock and the civil Date type used by
// bookings, pricing and the search engine.
//
// The location is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use IANA names such as "UTC",
// "Asia/Jakarta" or "America/New_York".
package calendar

import (
	"hotelmanager/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	locationMu  sync.RWMutex
)

func init() {
	cfg := config.Get()

	tz := cfg.App.Timezone
	if tz == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		tz = "UTC"
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", tz).
			Msg("Failed to load timezone, falling back to UTC")

		SetLocation(time.UTC)

		return
	}

	SetLocation(loc)
	log.Info().Str("timezone", tz).Msg("Application timezone initialized")
}

// SetLocation replaces the application location. Tests use it to pin the clock's zone.
func SetLocation(loc *time.Location) {
	locationMu.Lock()
	defer locationMu.Unlock()

	appLocation = loc
}

// GetLocation returns the current application location.
func GetLocation() *time.Location {
	locationMu.RLock()
	defer locationMu.RUnlock()

	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application location.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns the civil date of Now.
func Today() Date {
	return FromTime(Now())
}

// Format formats a time in the application location.
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
