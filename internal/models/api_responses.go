package models

import (
	"time"
)

// FundResponse represents the fund snapshot returned by GET /api/fund
type FundResponse struct {
	NAV       float64   `json:"nav"`
	HasNAV    bool      `json:"has_nav"`
	AsOf      string    `json:"as_of"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	Holdings  []Holding `json:"holdings"`
	Warnings  []Warning `json:"warnings,omitempty"`
}

// QuotesResponse represents the live quotes returned by GET /api/quotes.
// Quotes preserves request order; Missing lists symbols with no quote.
type QuotesResponse struct {
	Quotes      []Quote   `json:"quotes"`
	Missing     []string  `json:"missing,omitempty"`
	RateLimited bool      `json:"rate_limited,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
	Warnings    []Warning `json:"warnings,omitempty"`
}

// ProjectionRequest represents the request body for POST /api/projection.
// Move sources merge in precedence order: live quotes (when use_live_moves),
// then moves_text entries, then explicit map entries; later sources win.
// manual_nav overrides the scraped NAV when > 0. mode overrides the
// configured fetch method for the underlying holdings fetch.
type ProjectionRequest struct {
	Moves        map[string]float64 `json:"moves"`
	MovesText    string             `json:"moves_text"`
	UseLiveMoves bool               `json:"use_live_moves"`
	Normalize    bool               `json:"normalize"`
	ManualNAV    float64            `json:"manual_nav"`
	Mode         string             `json:"mode"`
}

// ProjectionResponse represents the response for POST /api/projection
type ProjectionResponse struct {
	ProjectionResult
	AsOf     string    `json:"as_of"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// RefreshResponse represents the response for POST /api/refresh
type RefreshResponse struct {
	Cleared []string `json:"cleared"`
}

// ErrorResponse represents an API error response. Remedy carries the
// user-visible suggestion (switch fetch method, wait out the rate limit,
// retry).
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Remedy  string `json:"remedy,omitempty"`
}
