// Package roundhill scrapes the Roundhill MAGS fund page for the official
// NAV, the as-of date, and the top-holdings table. The page renders its data
// client-side, so the primary strategy drives a headless browser; a plain
// HTTP fetch covers environments without one and pages served with
// server-side rows.
package roundhill

import (
	"context"
	"fmt"
	"strings"
)

// DefaultURL is the issuer's fund page.
const DefaultURL = "https://www.roundhillinvestments.com/etf/mags/"

// Row is one holdings-table row as scraped, before ticker resolution.
// Weight is a fraction of NAV; Shares is 0 when the page omits the column.
type Row struct {
	Name   string
	Weight float64
	Shares float64
}

// PageData is the raw outcome of one scrape. NAV may be absent (HasNAV
// false); the page sometimes withholds it.
type PageData struct {
	NAV    float64
	HasNAV bool
	AsOf   string
	Rows   []Row
}

// Strategy fetches the fund page one way. Implementations return raw page
// data; resolving rows onto the ticker universe happens in the services
// layer.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context) (*PageData, error)
}

// FetchMethod selects the strategy chain.
type FetchMethod string

const (
	// FetchBrowserFirst tries the headless browser, then plain HTTP.
	FetchBrowserFirst FetchMethod = "browser-first"
	// FetchHTTPOnly skips the browser entirely.
	FetchHTTPOnly FetchMethod = "http-only"
)

// ParseFetchMethod validates a fetch-method string.
func ParseFetchMethod(s string) (FetchMethod, error) {
	switch FetchMethod(s) {
	case FetchBrowserFirst, FetchHTTPOnly:
		return FetchMethod(s), nil
	}
	return "", fmt.Errorf("invalid fetch method %q (want %q or %q)", s, FetchBrowserFirst, FetchHTTPOnly)
}

// StrategyError records why one strategy failed.
type StrategyError struct {
	Strategy string
	Err      error
}

func (e StrategyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Strategy, e.Err)
}

func (e StrategyError) Unwrap() error {
	return e.Err
}

// ScrapeError reports that every strategy in the chain failed. It carries
// each per-strategy cause so the API can show the user what was tried.
type ScrapeError struct {
	Attempts []StrategyError
}

func (e *ScrapeError) Error() string {
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.Error()
	}
	return "all scrape strategies failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-strategy causes to errors.Is and errors.As.
func (e *ScrapeError) Unwrap() []error {
	errs := make([]error, len(e.Attempts))
	for i := range e.Attempts {
		errs[i] = e.Attempts[i]
	}
	return errs
}
