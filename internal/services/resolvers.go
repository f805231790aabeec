package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/Acelogic/Maginator/internal/models"
	"github.com/Acelogic/Maginator/internal/roundhill"
)

// nameToTicker maps company-name stems to universe tickers. Matching is by
// containment over the normalized name, which tolerates the labels the fund
// page uses ("NVIDIA CORP", "AMAZON.COM INC", "META PLATFORMS INC").
var nameToTicker = []struct {
	Stem   string
	Ticker string
}{
	{"NVIDIA", "NVDA"},
	{"MICROSOFT", "MSFT"},
	{"APPLE", "AAPL"},
	{"ALPHABET", "GOOGL"},
	{"AMAZON", "AMZN"},
	{"META", "META"},
	{"TESLA", "TSLA"},
}

// ResolveHoldingName maps a scraped row name to a universe ticker. The fund
// holds both real equities ("NVIDIA CORP") and total return swaps on them
// ("NVIDIA CORP SWAP GS"); swaps resolve to the underlying equity's ticker.
// Cash-like rows ("US DOLLARS", "CASH OFFSET", treasury funds) resolve to
// nothing.
func ResolveHoldingName(name string) (string, bool) {
	normalized := normalizeHoldingName(name)
	if normalized == "" {
		return "", false
	}

	// Rows that carry the ticker itself resolve directly.
	if models.IsUniverseSymbol(normalized) {
		return normalized, true
	}

	for _, m := range nameToTicker {
		if strings.Contains(normalized, m.Stem) {
			return m.Ticker, true
		}
	}
	return "", false
}

// normalizeHoldingName uppercases, strips swap decorations, domain-like
// suffixes ("AMAZON.COM INC" → "AMAZON INC"), and share-class suffixes so
// that "ALPHABET INC-CL A SWAP" and "ALPHABET INC CLASS A" compare equal.
func normalizeHoldingName(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))

	// A swap row names the underlying followed by " SWAP [counterparty]".
	if idx := strings.Index(upper, " SWAP"); idx >= 0 {
		upper = upper[:idx]
	}

	domainSuffixes := []string{".COM", ".NET", ".ORG", ".CO"}
	for _, ds := range domainSuffixes {
		upper = strings.ReplaceAll(upper, ds, "")
	}

	// Remove share-class suffixes like "CLASS A", "-CL A", "CL A"
	// Order matters: try longer patterns first
	classPatterns := []string{
		"-CLASS A", "-CLASS B", "-CLASS C",
		"-CL A", "-CL B", "-CL C",
		" CLASS A", " CLASS B", " CLASS C",
		" CL A", " CL B", " CL C",
	}
	for _, p := range classPatterns {
		if strings.HasSuffix(upper, p) {
			upper = upper[:len(upper)-len(p)]
			break
		}
	}

	return strings.TrimSpace(upper)
}

// ResolveHoldingRows maps scraped rows onto the ticker universe. Rows that
// resolve to the same ticker (equity plus swap lines) accumulate weight and
// shares under one holding, keeping the first row's display name and the
// page's ordering. Unresolved rows come back to the caller for flagging.
func ResolveHoldingRows(rows []roundhill.Row) (resolved []models.Holding, unresolved []roundhill.Row) {
	index := make(map[string]int, len(rows))
	for _, r := range rows {
		ticker, ok := ResolveHoldingName(r.Name)
		if !ok {
			unresolved = append(unresolved, r)
			continue
		}
		if i, exists := index[ticker]; exists {
			resolved[i].Weight += r.Weight
			resolved[i].Shares += r.Shares
			continue
		}
		index[ticker] = len(resolved)
		resolved = append(resolved, models.Holding{
			Symbol: ticker,
			Name:   strings.TrimSpace(r.Name),
			Weight: r.Weight,
			Shares: r.Shares,
		})
	}
	return resolved, unresolved
}

// weightSumWarning flags a snapshot whose weights stray from 100% beyond
// half a percent. Integer arithmetic avoids floating-point accumulation:
// each weight rounds to basis points and the sum is compared against
// 10000 ± 50.
func weightSumWarning(holdings []models.Holding) *models.Warning {
	var bps int64
	for _, h := range holdings {
		bps += int64(math.Round(h.Weight * 10000))
	}
	if bps >= 9950 && bps <= 10050 {
		return nil
	}
	return &models.Warning{
		Code:    models.WarnWeightSumMismatch,
		Message: fmt.Sprintf("holdings sum to %.2f%%, expected 100%%", float64(bps)/100.0),
	}
}
