package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs elapsed time for a call. Use with defer:
//
//	defer TrackTime("HoldingsService.Fetch", time.Now())
func TrackTime(funcName string, start time.Time) {
	elapsed := time.Since(start)
	log.Debugf("%s took %d ms", funcName, elapsed.Milliseconds())
}
