package models

import (
	"time"
)

// Quote represents a live quote for a single symbol.
// ChangePct is a percent number: +2.5 means up 2.5% on the day.
type Quote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	PrevClose float64   `json:"prev_close"`
	Change    float64   `json:"change"`
	ChangePct float64   `json:"change_pct"`
	LatestDay string    `json:"latest_day,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// QuoteBook is the result of one batch quote fetch. Missing lists requested
// symbols that produced no quote; a partial book is a valid result.
type QuoteBook struct {
	Quotes      map[string]Quote
	Missing     []string
	RateLimited bool
	FetchedAt   time.Time
}

// MoveAllKey is the special MoveSet key that supplies a default move for
// every symbol without an explicit entry.
const MoveAllKey = "ALL"

// MoveSet maps symbol → hypothetical percent move (+2 = +2%).
type MoveSet map[string]float64

// Resolve returns the move for symbol: the explicit entry if present,
// otherwise the ALL default, otherwise 0.
func (m MoveSet) Resolve(symbol string) float64 {
	if pct, ok := m[symbol]; ok {
		return pct
	}
	if pct, ok := m[MoveAllKey]; ok {
		return pct
	}
	return 0
}
