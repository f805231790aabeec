package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Acelogic/Maginator/internal/alphavantage"
	"github.com/Acelogic/Maginator/internal/cache"
	"github.com/Acelogic/Maginator/internal/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// quoteFetchConcurrency caps in-flight Alpha Vantage requests. The free
// tier tolerates small bursts; anything wider just trips the throttle.
const quoteFetchConcurrency = 4

// QuoteFetchError wraps the underlying provider failure when no quotes at
// all could be fetched for a symbol set.
type QuoteFetchError struct {
	Cause error
}

func (e *QuoteFetchError) Error() string {
	return "quote fetch failed: " + e.Cause.Error()
}

func (e *QuoteFetchError) Unwrap() error {
	return e.Cause
}

// QuoteService fetches live quotes for holdings symbols, with a short
// cache keyed on the symbol set.
type QuoteService struct {
	memCache *cache.MemoryCache
	avClient *alphavantage.Client
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(memCache *cache.MemoryCache, avClient *alphavantage.Client) *QuoteService {
	return &QuoteService{
		memCache: memCache,
		avClient: avClient,
	}
}

// quoteCacheKey builds a deterministic cache key for a symbol set.
func quoteCacheKey(symbols []string) string {
	sorted := make([]string, len(symbols))
	copy(sorted, symbols)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// GetQuotes returns a quote book for the given symbols, fetching whatever
// the cache cannot serve. Partial books are valid: symbols whose fetch
// failed land in Missing with a warning each, and RateLimited is set when
// the provider throttled part of the batch. A fully failed batch returns
// *QuoteFetchError; a throttle that produced zero quotes surfaces as
// alphavantage.ErrRateLimited via errors.Is.
func (s *QuoteService) GetQuotes(ctx context.Context, symbols []string) (*models.QuoteBook, error) {
	defer TrackTime("QuoteService.GetQuotes", time.Now())

	key := quoteCacheKey(symbols)
	book, ok := s.memCache.GetQuotes(key)
	if !ok {
		fetched, err := s.fetchQuotes(ctx, symbols)
		if err != nil {
			return nil, err
		}
		s.memCache.SetQuotes(key, fetched)
		book = fetched
	} else {
		log.Debugf("quotes for %s served from cache", key)
	}

	for _, sym := range book.Missing {
		Warningf(ctx, models.WarnQuoteMissing, "no quote available for %s", sym)
	}
	if book.RateLimited {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnQuoteRateLimited,
			Message: "quote provider rate limit hit; some quotes may be missing or stale",
		})
	}
	return book, nil
}

// fetchQuotes fans the symbol list out to the provider. A rate-limit
// response cancels the remaining fetches; other per-symbol failures are
// recorded and skipped so the rest of the batch still lands.
func (s *QuoteService) fetchQuotes(ctx context.Context, symbols []string) (*models.QuoteBook, error) {
	var (
		mu          sync.Mutex
		quotes      = make(map[string]models.Quote, len(symbols))
		lastErr     error
		rateLimited atomic.Bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(quoteFetchConcurrency)

	for _, symbol := range symbols {
		g.Go(func() error {
			parsed, err := s.avClient.GetQuote(gctx, symbol)
			if err != nil {
				if errors.Is(err, alphavantage.ErrRateLimited) {
					rateLimited.Store(true)
					return err
				}
				log.Warnf("quote fetch for %s failed: %v", symbol, err)
				mu.Lock()
				lastErr = err
				mu.Unlock()
				return nil
			}

			q := models.Quote{
				Symbol:    parsed.Symbol,
				Price:     parsed.Price,
				PrevClose: parsed.PrevClose,
				Change:    parsed.Change,
				ChangePct: parsed.ChangePercent,
				LatestDay: parsed.LatestDay,
				FetchedAt: time.Now(),
			}
			// Some responses omit the change fields; derive them from the
			// previous close when we can.
			if q.Change == 0 && q.ChangePct == 0 && q.PrevClose > 0 && q.Price != q.PrevClose {
				q.Change = q.Price - q.PrevClose
				q.ChangePct = 100 * q.Change / q.PrevClose
			}

			mu.Lock()
			quotes[symbol] = q
			mu.Unlock()
			return nil
		})
	}

	groupErr := g.Wait()

	var missing []string
	for _, symbol := range symbols {
		if _, ok := quotes[symbol]; !ok {
			missing = append(missing, symbol)
		}
	}

	if len(quotes) == 0 {
		cause := groupErr
		if cause == nil {
			cause = lastErr
		}
		if cause == nil {
			cause = alphavantage.ErrNoQuote
		}
		return nil, &QuoteFetchError{Cause: cause}
	}

	if rateLimited.Load() {
		log.Warnf("rate limited after %d of %d quotes", len(quotes), len(symbols))
	}

	return &models.QuoteBook{
		Quotes:      quotes,
		Missing:     missing,
		RateLimited: rateLimited.Load(),
		FetchedAt:   time.Now(),
	}, nil
}

// InvalidateCache drops all cached quote books.
func (s *QuoteService) InvalidateCache() {
	s.memCache.InvalidateQuotes()
}
