package util

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// LastMarketDay returns the most recent weekday in New York market time
// (today, when today already is one). Used as the as-of fallback when the
// fund page publishes no usable date.
func LastMarketDay(input time.Time) time.Time {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		log.Errorf("Failed to load location 'America/New_York': %v. Falling back to UTC.", err)
		loc = time.UTC
	}
	d := input.In(loc)

	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, -1)
	}

	return d
}
