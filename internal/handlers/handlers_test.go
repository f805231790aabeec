package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Acelogic/Maginator/internal/alphavantage"
	"github.com/Acelogic/Maginator/internal/cache"
	"github.com/Acelogic/Maginator/internal/roundhill"
	"github.com/Acelogic/Maginator/internal/services"
	"github.com/gin-gonic/gin"
)

// fundPageHTML is a trimmed copy of the issuer's fund page: seven resolvable
// rows summing to 99.66% plus the NAV line.
const fundPageHTML = `<!DOCTYPE html>
<html>
<head><title>MAGS | Roundhill Magnificent Seven ETF</title></head>
<body>
<div class="fund-details">
  <p>Net Asset Value <span>$52.80</span> as of 8/21/2026</p>
</div>
<table>
  <tbody class="fund-topTenHoldings">
    <tr><td data-title="Name">NVIDIA CORP</td><td data-title="Weight">14.19%</td></tr>
    <tr><td data-title="Name">ALPHABET INC CLASS A</td><td data-title="Weight">15.38%</td></tr>
    <tr><td data-title="Name">AMAZON.COM INC</td><td data-title="Weight">14.96%</td></tr>
    <tr><td data-title="Name">MICROSOFT CORP</td><td data-title="Weight">14.02%</td></tr>
    <tr><td data-title="Name">TESLA INC</td><td data-title="Weight">13.90%</td></tr>
    <tr><td data-title="Name">META PLATFORMS INC CLASS A</td><td data-title="Weight">13.67%</td></tr>
    <tr><td data-title="Name">APPLE INC</td><td data-title="Weight">13.54%</td></tr>
  </tbody>
</table>
</body>
</html>`

// navlessPageHTML carries the same holdings but no NAV figure.
const navlessPageHTML = `<!DOCTYPE html>
<html>
<body>
<p>Holdings as of 8/21/2026</p>
<table>
  <tbody class="fund-topTenHoldings">
    <tr><td data-title="Name">NVIDIA CORP</td><td data-title="Weight">14.19%</td></tr>
    <tr><td data-title="Name">ALPHABET INC CLASS A</td><td data-title="Weight">15.38%</td></tr>
    <tr><td data-title="Name">AMAZON.COM INC</td><td data-title="Weight">14.96%</td></tr>
    <tr><td data-title="Name">MICROSOFT CORP</td><td data-title="Weight">14.02%</td></tr>
    <tr><td data-title="Name">TESLA INC</td><td data-title="Weight">13.90%</td></tr>
    <tr><td data-title="Name">META PLATFORMS INC CLASS A</td><td data-title="Weight">13.67%</td></tr>
    <tr><td data-title="Name">APPLE INC</td><td data-title="Weight">13.54%</td></tr>
  </tbody>
</table>
</body>
</html>`

type avQuote struct {
	price, prevClose, change float64
	changePct                string
}

// avQuotes drives the fake quote server: NVDA up 2%, everything else flat.
var avQuotes = map[string]avQuote{
	"NVDA":  {181.4000, 177.8431, 3.5569, "2.0000%"},
	"AAPL":  {232.10, 232.10, 0, "0.0000%"},
	"MSFT":  {528.30, 528.30, 0, "0.0000%"},
	"GOOGL": {207.64, 207.64, 0, "0.0000%"},
	"AMZN":  {228.84, 228.84, 0, "0.0000%"},
	"META":  {751.40, 751.40, 0, "0.0000%"},
	"TSLA":  {342.03, 342.03, 0, "0.0000%"},
}

func defaultAVHandler(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	q, ok := avQuotes[symbol]
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.Write([]byte(`{"Global Quote": {}}`))
		return
	}
	fmt.Fprintf(w, `{"Global Quote": {"01. symbol": %q, "05. price": "%.4f", "07. latest trading day": "2026-08-24", "08. previous close": "%.4f", "09. change": "%.4f", "10. change percent": %q}}`,
		symbol, q.price, q.prevClose, q.change, q.changePct)
}

// stubStrategy stands in for the browser strategy, which has no place in
// unit tests.
type stubStrategy struct {
	name  string
	pd    *roundhill.PageData
	err   error
	calls int32
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Fetch(ctx context.Context) (*roundhill.PageData, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	return s.pd, nil
}

// testStack wires the full router against fake upstreams, the way main.go
// wires the real thing. The browser slot is a failing stub; the http
// strategy is the real one pointed at the page server.
type testStack struct {
	router    *gin.Engine
	browser   *stubStrategy
	pageCalls int32
	avCalls   int32
}

// newTestStack builds the stack. nil handlers select the default fixtures.
func newTestStack(t *testing.T, method roundhill.FetchMethod, pageHandler, avHandler http.HandlerFunc) *testStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := &testStack{
		browser: &stubStrategy{name: "browser", err: errors.New("no browser in tests")},
	}

	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&st.pageCalls, 1)
		if pageHandler != nil {
			pageHandler(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(fundPageHTML))
	}))
	t.Cleanup(pageSrv.Close)

	avSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&st.avCalls, 1)
		if avHandler != nil {
			avHandler(w, r)
			return
		}
		defaultAVHandler(w, r)
	}))
	t.Cleanup(avSrv.Close)

	memCache := cache.NewMemoryCache(time.Minute, time.Minute)
	plain := roundhill.NewHTTPStrategy(pageSrv.URL, 5*time.Second)
	holdingsSvc := services.NewHoldingsService(memCache, st.browser, plain, method)
	quoteSvc := services.NewQuoteService(memCache, alphavantage.NewClientWithBaseURL("test-key", avSrv.URL))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/fund", NewFundHandler(holdingsSvc).GetFund)
	api.GET("/quotes", NewQuoteHandler(quoteSvc).GetQuotes)
	api.POST("/projection", NewProjectionHandler(holdingsSvc, quoteSvc).Project)
	api.POST("/refresh", NewRefreshHandler(holdingsSvc, quoteSvc).Refresh)
	st.router = router
	return st
}

func performRequest(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %s: %v", w.Body.String(), err)
	}
}

func within(got, want, eps float64) bool {
	return math.Abs(got-want) <= eps
}
