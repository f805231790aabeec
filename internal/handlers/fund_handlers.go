package handlers

import (
	"errors"
	"net/http"

	"github.com/Acelogic/Maginator/internal/models"
	"github.com/Acelogic/Maginator/internal/roundhill"
	"github.com/Acelogic/Maginator/internal/services"
	"github.com/gin-gonic/gin"
)

// FundHandler handles fund snapshot endpoints
type FundHandler struct {
	holdingsSvc *services.HoldingsService
}

// NewFundHandler creates a new FundHandler
func NewFundHandler(holdingsSvc *services.HoldingsService) *FundHandler {
	return &FundHandler{
		holdingsSvc: holdingsSvc,
	}
}

// GetFund handles GET /api/fund
// @Summary Current fund snapshot
// @Description NAV, as-of date and top holdings from the Roundhill MAGS page. Served from cache inside the holdings TTL unless refresh=true.
// @Tags fund
// @Produce json
// @Param refresh query bool false "Bypass the cached snapshot"
// @Param mode query string false "Fetch method override" Enums(browser-first, http-only)
// @Success 200 {object} models.FundResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/fund [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	opts := services.FetchOptions{
		ForceRefresh: c.Query("refresh") == "true",
	}
	if modeStr := c.Query("mode"); modeStr != "" {
		mode, err := roundhill.ParseFetchMethod(modeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		opts.Mode = mode
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	snap, err := h.holdingsSvc.Fetch(ctx, opts)
	if err != nil {
		var scrapeErr *roundhill.ScrapeError
		if errors.As(err, &scrapeErr) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "scrape_failed",
				Message: err.Error(),
				Remedy:  "the fund page may be slow or changed; retry, or switch mode between browser-first and http-only",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.FundResponse{
		NAV:       snap.NAV,
		HasNAV:    snap.HasNAV,
		AsOf:      snap.AsOf,
		Source:    snap.Source,
		FetchedAt: snap.FetchedAt,
		Holdings:  snap.Holdings,
		Warnings:  wc.GetWarnings(),
	})
}
