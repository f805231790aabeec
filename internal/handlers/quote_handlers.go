package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/Acelogic/Maginator/internal/alphavantage"
	"github.com/Acelogic/Maginator/internal/models"
	"github.com/Acelogic/Maginator/internal/services"
	"github.com/gin-gonic/gin"
)

// QuoteHandler handles live quote endpoints
type QuoteHandler struct {
	quoteSvc *services.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteSvc *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteSvc: quoteSvc,
	}
}

// GetQuotes handles GET /api/quotes
// @Summary Live quotes for the fund's tickers
// @Description Current price, previous close and day change for each ticker, from Alpha Vantage. Cached for the quotes TTL.
// @Tags quotes
// @Produce json
// @Param symbols query string false "Comma-separated subset of the fund's tickers (default: all seven)"
// @Success 200 {object} models.QuotesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/quotes [get]
func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	symbols := models.UniverseSymbols()
	if raw := c.Query("symbols"); raw != "" {
		symbols = symbols[:0]
		for _, part := range strings.Split(raw, ",") {
			sym := strings.ToUpper(strings.TrimSpace(part))
			if sym == "" {
				continue
			}
			if !models.IsUniverseSymbol(sym) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error:   "bad_request",
					Message: fmt.Sprintf("%s is not one of the fund's tickers", sym),
					Remedy:  "valid symbols: " + strings.Join(models.Universe, ", "),
				})
				return
			}
			symbols = append(symbols, sym)
		}
		if len(symbols) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "symbols must name at least one ticker",
			})
			return
		}
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	book, err := h.quoteSvc.GetQuotes(ctx, symbols)
	if err != nil {
		if errors.Is(err, alphavantage.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:   "rate_limited",
				Message: err.Error(),
				Remedy:  "the quote provider throttled us; wait a minute before retrying",
			})
			return
		}
		var qErr *services.QuoteFetchError
		if errors.As(err, &qErr) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "quote_failed",
				Message: err.Error(),
				Remedy:  "the quote provider is unreachable; retry later",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	quotes := make([]models.Quote, 0, len(book.Quotes))
	for _, sym := range symbols {
		if q, ok := book.Quotes[sym]; ok {
			quotes = append(quotes, q)
		}
	}
	missing := append([]string(nil), book.Missing...)
	sort.Strings(missing)

	c.JSON(http.StatusOK, models.QuotesResponse{
		Quotes:      quotes,
		Missing:     missing,
		RateLimited: book.RateLimited,
		FetchedAt:   book.FetchedAt,
		Warnings:    wc.GetWarnings(),
	})
}
