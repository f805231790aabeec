package roundhill

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Acelogic/Maginator/internal/util"
)

// userAgent spoofs a desktop browser; the issuer's CDN answers obvious bot
// agents with a challenge page.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// holdingsRowSelector matches the rendered holdings rows; the page carries a
// desktop and a mobile table with the same data.
const holdingsRowSelector = "tbody.fund-topTenHoldings tr, tbody.fund-topTenHoldings-mobile tr"

// maxAsOfAge bounds how stale a page date may be before it is ignored.
const maxAsOfAge = 730 * 24 * time.Hour

var (
	navPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Net Asset Value[^$]*\$\s*([0-9][0-9,]*\.?[0-9]*)`),
		regexp.MustCompile(`\bNAV\b[^$]*\$\s*([0-9][0-9,]*\.?[0-9]*)`),
		regexp.MustCompile(`"NetAssetValue"[^0-9]*([0-9][0-9,]*\.?[0-9]*)`),
	}
	dateRe     = regexp.MustCompile(`\b([0-1]?\d/[0-3]?\d/\d{4})\b`)
	jsonPairRe = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"\s*,\s*"weight"\s*:\s*"([^"]+)"`)
)

// rawRow is a holdings row before weight coercion.
type rawRow struct {
	name   string
	weight string
	shares string
}

// ParseWeight coerces a scraped weight string ("14.29%", "14.29", "0.1429")
// to a fraction. Values above 1.5 are treated as percent numbers; at or
// below, as fractions already. Negative or unparseable values are rejected.
func ParseWeight(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(s, "%", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	if v > 1.5 {
		v /= 100
	}
	return v, true
}

// parseShares coerces a share count, best effort.
func parseShares(s string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ExtractNAV pulls the official NAV out of the page text. The page has used
// several markups over time; the first matching pattern wins. A page without
// a NAV is valid (HasNAV false downstream).
func ExtractNAV(html string) (float64, bool) {
	for _, re := range navPatterns {
		m := re.FindStringSubmatch(html)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err == nil && v > 0 {
			return v, true
		}
	}
	return 0, false
}

// ExtractAsOfDate picks the latest plausible M/D/YYYY date on the page:
// future dates and dates older than two years are placeholders, not data.
// With no surviving candidate it falls back to the most recent weekday.
func ExtractAsOfDate(html string, now time.Time) string {
	var best time.Time
	for _, m := range dateRe.FindAllStringSubmatch(html, -1) {
		d, err := time.Parse("1/2/2006", m[1])
		if err != nil {
			continue
		}
		if d.After(now) || now.Sub(d) > maxAsOfAge {
			continue
		}
		if d.After(best) {
			best = d
		}
	}
	if best.IsZero() {
		return util.LastMarketDay(now).Format("1/2/2006")
	}
	return best.Format("1/2/2006")
}

// parseHoldingsDoc extracts raw holdings rows from a parsed document using
// the data-title cell attributes.
func parseHoldingsDoc(doc *goquery.Document) []rawRow {
	var rows []rawRow
	doc.Find(holdingsRowSelector).Each(func(_ int, tr *goquery.Selection) {
		name := strings.TrimSpace(tr.Find(`td[data-title="Name"]`).First().Text())
		weight := strings.TrimSpace(tr.Find(`td[data-title="Weight"]`).First().Text())
		shares := strings.TrimSpace(tr.Find(`td[data-title="Shares"]`).First().Text())
		if name == "" || weight == "" {
			return
		}
		rows = append(rows, rawRow{name: name, weight: weight, shares: shares})
	})
	return rows
}

// parseEmbeddedPairs recovers name/weight pairs from JSON the page embeds in
// script tags, for responses served without rendered table rows.
func parseEmbeddedPairs(html string) []rawRow {
	var rows []rawRow
	for _, m := range jsonPairRe.FindAllStringSubmatch(html, -1) {
		rows = append(rows, rawRow{name: m[1], weight: m[2]})
	}
	return rows
}

// buildPageData assembles a PageData from scraped rows and the page HTML.
// The desktop and mobile tables repeat the same rows, so identical
// name/weight pairs collapse to one. Rows with unparseable weights are
// dropped.
func buildPageData(html string, raw []rawRow, now time.Time) *PageData {
	seen := make(map[string]bool, len(raw))
	var rows []Row
	for _, r := range raw {
		key := r.name + "|" + r.weight
		if seen[key] {
			continue
		}
		seen[key] = true

		w, ok := ParseWeight(r.weight)
		if !ok {
			continue
		}
		rows = append(rows, Row{Name: r.name, Weight: w, Shares: parseShares(r.shares)})
	}

	pd := &PageData{Rows: rows}
	pd.NAV, pd.HasNAV = ExtractNAV(html)
	pd.AsOf = ExtractAsOfDate(html, now)
	return pd
}
