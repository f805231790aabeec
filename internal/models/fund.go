package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Holding represents one position in the fund's top-holdings table.
// Weight is a fraction of NAV (0.142857 = 14.2857%), never negative.
// Shares is 0 when the source page omits the column.
type Holding struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Shares float64 `json:"shares,omitempty"`
}

func (h Holding) MarshalJSON() ([]byte, error) {
	type plain struct {
		Symbol string          `json:"symbol"`
		Name   string          `json:"name"`
		Weight json.RawMessage `json:"weight"`
		Shares float64         `json:"shares,omitempty"`
	}
	return json.Marshal(plain{
		Symbol: h.Symbol,
		Name:   h.Name,
		Weight: json.RawMessage(fmt.Sprintf("%.6f", h.Weight)),
		Shares: h.Shares,
	})
}

// FundSnapshot is one scrape of the fund page: the official NAV (when the
// page exposes it), the as-of date, and the resolved holdings.
type FundSnapshot struct {
	NAV       float64   `json:"nav"`
	HasNAV    bool      `json:"has_nav"`
	AsOf      string    `json:"as_of"` // M/D/YYYY, "Unknown" when undeterminable
	Holdings  []Holding `json:"holdings"`
	Source    string    `json:"source"` // strategy that produced it: "browser" or "http"
	FetchedAt time.Time `json:"fetched_at"`
}

// HoldingSymbols returns the symbols of the given holdings in order.
func HoldingSymbols(holdings []Holding) []string {
	symbols := make([]string, len(holdings))
	for i, h := range holdings {
		symbols[i] = h.Symbol
	}
	return symbols
}
