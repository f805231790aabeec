package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Alphavantage is a Stock and ETF API that fetches data including pricing data
// It is a subscription service, but provides free API access
// https://www.alphavantage.co/documentation/
const defaultBaseURL = "https://www.alphavantage.co/query"

var (
	// ErrRateLimited indicates the API throttled the request, either with an
	// HTTP 429 or with a 200 body carrying a throttle notice.
	ErrRateLimited = errors.New("alphavantage: rate limited")

	// ErrNoQuote indicates the API answered with an empty quote object,
	// which is how it reports symbols it does not know.
	ErrNoQuote = errors.New("alphavantage: no quote data")
)

// Client is an HTTP client for the AlphaVantage API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new AlphaVantage client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL creates a new AlphaVantage client with a custom base URL (for testing)
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetQuote fetches a real-time quote for a symbol via GLOBAL_QUOTE.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*ParsedQuote, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	params.Set("apikey", c.apiKey)

	resp, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var quoteResp GlobalQuoteResponse
	if err := json.Unmarshal(body, &quoteResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if quoteResp.Note != "" || quoteResp.Information != "" {
		return nil, fmt.Errorf("throttle notice for %s: %w", symbol, ErrRateLimited)
	}
	if quoteResp.GlobalQuote.Price == "" {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoQuote)
	}

	price, err := strconv.ParseFloat(quoteResp.GlobalQuote.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price: %w", err)
	}

	// Secondary fields are best-effort; a quote with only a price still serves.
	prevClose, _ := strconv.ParseFloat(quoteResp.GlobalQuote.PrevClose, 64)
	change, _ := strconv.ParseFloat(quoteResp.GlobalQuote.Change, 64)
	changePct, _ := strconv.ParseFloat(strings.TrimSuffix(quoteResp.GlobalQuote.ChangePercent, "%"), 64)

	return &ParsedQuote{
		Symbol:        symbol,
		Price:         price,
		PrevClose:     prevClose,
		Change:        change,
		ChangePercent: changePct,
		LatestDay:     quoteResp.GlobalQuote.LatestDay,
	}, nil
}

func (c *Client) doRequest(ctx context.Context, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		resp.Body.Close()
		return nil, fmt.Errorf("API returned status 429: %w", ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return resp, nil
}
