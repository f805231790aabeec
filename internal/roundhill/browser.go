package roundhill

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

// cookieSelectors are consent-banner accept buttons the issuer's site has
// shipped; absence of the banner is the common case.
var cookieSelectors = []string{
	"#onetrust-accept-btn-handler",
	"button#onetrust-accept-btn-handler",
	"button[aria-label='Accept All Cookies']",
	"button.cookie-accept",
}

// rowExtractJS pulls holdings cells out of the rendered DOM.
const rowExtractJS = `(() => {
	const out = [];
	const rows = document.querySelectorAll('tbody.fund-topTenHoldings tr, tbody.fund-topTenHoldings-mobile tr');
	for (const tr of rows) {
		const cell = (t) => tr.querySelector('td[data-title="' + t + '"]');
		const name = cell('Name');
		const weight = cell('Weight');
		const shares = cell('Shares');
		if (name && weight) {
			out.push({
				name: name.textContent.trim(),
				weight: weight.textContent.trim(),
				shares: shares ? shares.textContent.trim() : '',
			});
		}
	}
	return out;
})()`

// holdingsTabJS activates the "Top Holdings" tab when the table hides
// behind it; returns whether a tab was clicked.
const holdingsTabJS = `(() => {
	const els = Array.from(document.querySelectorAll('a, button'));
	const tab = els.find(e => e.textContent.trim().toLowerCase().includes('top holdings'));
	if (tab) { tab.click(); return true; }
	return false;
})()`

const (
	browserRowWait = 12 * time.Second
	browserRetries = 2
)

// BrowserStrategy drives a headless browser so client-rendered holdings and
// NAV become visible. An order of magnitude slower than the HTTP strategy,
// but it sees the page a human would.
type BrowserStrategy struct {
	url     string
	timeout time.Duration
}

// NewBrowserStrategy creates the headless-browser strategy. timeout bounds
// the whole run, retries included.
func NewBrowserStrategy(url string, timeout time.Duration) *BrowserStrategy {
	return &BrowserStrategy{
		url:     url,
		timeout: timeout,
	}
}

func (s *BrowserStrategy) Name() string {
	return "browser"
}

// Fetch renders the page and extracts holdings, NAV, and as-of date.
// Transient render failures (rows never appearing) get bounded
// re-navigations inside the overall budget.
func (s *BrowserStrategy) Fetch(ctx context.Context) (*PageData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var lastErr error
	for attempt := 0; attempt <= browserRetries; attempt++ {
		if attempt > 0 {
			log.Warnf("browser strategy: render attempt %d after: %v", attempt+1, lastErr)
		}
		html, raw, err := s.render(browserCtx)
		if err != nil {
			lastErr = err
			if browserCtx.Err() != nil {
				break // overall budget exhausted
			}
			continue
		}
		return buildPageData(html, raw, time.Now()), nil
	}
	return nil, fmt.Errorf("holdings did not render: %w", lastErr)
}

// render performs one navigate-and-extract pass.
func (s *BrowserStrategy) render(ctx context.Context) (string, []rawRow, error) {
	if err := chromedp.Run(ctx, chromedp.Navigate(s.url)); err != nil {
		return "", nil, fmt.Errorf("navigate: %w", err)
	}

	s.dismissCookieBanner(ctx)

	raw, err := s.waitForRows(ctx)
	if err != nil || len(raw) == 0 {
		s.clickHoldingsTab(ctx)
		raw, err = s.waitForRows(ctx)
		if err != nil {
			return "", nil, err
		}
	}
	if len(raw) == 0 {
		return "", nil, fmt.Errorf("no holdings rows in rendered page")
	}

	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", nil, fmt.Errorf("read page html: %w", err)
	}
	return html, raw, nil
}

// waitForRows waits for the holdings table to appear, then extracts its rows.
func (s *BrowserStrategy) waitForRows(ctx context.Context) ([]rawRow, error) {
	waitCtx, cancel := context.WithTimeout(ctx, browserRowWait)
	defer cancel()
	if err := chromedp.Run(waitCtx, chromedp.WaitReady(holdingsRowSelector, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("holdings rows not present: %w", err)
	}

	var extracted []struct {
		Name   string `json:"name"`
		Weight string `json:"weight"`
		Shares string `json:"shares"`
	}
	if err := chromedp.Run(ctx, chromedp.Evaluate(rowExtractJS, &extracted)); err != nil {
		return nil, fmt.Errorf("extract rows: %w", err)
	}

	raw := make([]rawRow, 0, len(extracted))
	for _, e := range extracted {
		raw = append(raw, rawRow{name: e.Name, weight: e.Weight, shares: e.Shares})
	}
	return raw, nil
}

// dismissCookieBanner tries each known consent button with a short budget.
// Failures are expected; the banner is usually absent.
func (s *BrowserStrategy) dismissCookieBanner(ctx context.Context) {
	for _, sel := range cookieSelectors {
		clickCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := chromedp.Run(clickCtx, chromedp.Click(sel, chromedp.ByQuery, chromedp.NodeVisible))
		cancel()
		if err == nil {
			log.Debugf("browser strategy: dismissed cookie banner via %s", sel)
			_ = chromedp.Run(ctx, chromedp.Sleep(500*time.Millisecond))
			return
		}
	}
}

// clickHoldingsTab activates the holdings tab; a no-op when already active.
func (s *BrowserStrategy) clickHoldingsTab(ctx context.Context) {
	var clicked bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(holdingsTabJS, &clicked)); err != nil {
		return
	}
	if clicked {
		log.Debugf("browser strategy: activated top holdings tab")
		_ = chromedp.Run(ctx, chromedp.Sleep(2*time.Second))
	}
}
