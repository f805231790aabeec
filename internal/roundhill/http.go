package roundhill

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// HTTPStrategy fetches the fund page with a plain GET and parses whatever
// the server renders statically. Fast, but blind to client-side rendering.
type HTTPStrategy struct {
	url        string
	httpClient *http.Client
}

// NewHTTPStrategy creates the plain-HTTP strategy.
func NewHTTPStrategy(url string, timeout time.Duration) *HTTPStrategy {
	return &HTTPStrategy{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *HTTPStrategy) Name() string {
	return "http"
}

// Fetch GETs the page and parses holdings, NAV, and as-of date out of the
// static HTML. When no table rows are served, the embedded-JSON fallback
// recovers name/weight pairs from script payloads.
func (s *HTTPStrategy) Fetch(ctx context.Context) (*PageData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	html := string(body)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	raw := parseHoldingsDoc(doc)
	if len(raw) == 0 {
		raw = parseEmbeddedPairs(html)
		if len(raw) > 0 {
			log.Debugf("http strategy: recovered %d holdings rows from embedded JSON", len(raw))
		}
	}

	return buildPageData(html, raw, time.Now()), nil
}
