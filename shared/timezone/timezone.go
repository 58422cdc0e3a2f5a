package timezone

import (
	"errors"
	"flightbook/config"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location

	ErrInvalidDate = errors.New("invalid date")
)

func init() {
	Load(config.Get().App.Timezone)
}

// Load sets the application location. Unknown or empty names fall back to UTC.
func Load(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Kolkata', 'UTC', 'America/New_York'")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseDate accepts either a calendar date or a full RFC3339 timestamp.
func ParseDate(dateLayout, value string) (time.Time, error) {
	if t, err := Parse(dateLayout, value); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return ToAppTime(t), nil
	}

	return time.Time{}, ErrInvalidDate
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
