package handlers

import (
	"errors"
	"net/http"

	"github.com/Acelogic/Maginator/internal/alphavantage"
	"github.com/Acelogic/Maginator/internal/models"
	"github.com/Acelogic/Maginator/internal/roundhill"
	"github.com/Acelogic/Maginator/internal/services"
	"github.com/gin-gonic/gin"
)

// ProjectionHandler handles NAV projection endpoints
type ProjectionHandler struct {
	holdingsSvc *services.HoldingsService
	quoteSvc    *services.QuoteService
}

// NewProjectionHandler creates a new ProjectionHandler
func NewProjectionHandler(holdingsSvc *services.HoldingsService, quoteSvc *services.QuoteService) *ProjectionHandler {
	return &ProjectionHandler{
		holdingsSvc: holdingsSvc,
		quoteSvc:    quoteSvc,
	}
}

// Project handles POST /api/projection
// @Summary Project NAV under hypothetical moves
// @Description Applies per-ticker percent moves to the current holdings and reports the weighted return, projected NAV and per-holding contributions. Move sources merge as live quotes, then moves_text, then the moves map; later sources win per symbol.
// @Tags projection
// @Accept json
// @Produce json
// @Param request body models.ProjectionRequest true "Projection parameters"
// @Success 200 {object} models.ProjectionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/projection [post]
func (h *ProjectionHandler) Project(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	opts := services.FetchOptions{}
	if req.Mode != "" {
		mode, err := roundhill.ParseFetchMethod(req.Mode)
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

	nav, err := services.ResolveNAV(snap, req.ManualNAV)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
			Remedy:  "pass manual_nav in the request body when the fund page hides the NAV",
		})
		return
	}

	// Assemble move layers in precedence order; MergeMoves lets later
	// layers override earlier ones per symbol.
	layers := make([]models.MoveSet, 0, 3)
	if req.UseLiveMoves {
		symbols := models.HoldingSymbols(snap.Holdings)
		book, qerr := h.quoteSvc.GetQuotes(ctx, symbols)
		if qerr != nil {
			// A dead quote provider downgrades live moves to zero rather
			// than failing the projection.
			if errors.Is(qerr, alphavantage.ErrRateLimited) {
				services.AddWarning(ctx, models.Warning{
					Code:    models.WarnQuoteRateLimited,
					Message: "quote provider rate limit hit; live moves unavailable, using zero",
				})
			} else {
				services.Warningf(ctx, models.WarnQuoteMissing, "live moves unavailable: %v", qerr)
			}
		} else {
			layers = append(layers, services.AutoFillMoves(book, symbols))
		}
	}
	if req.MovesText != "" {
		parsed, perr := services.ParseMoves(req.MovesText)
		if perr != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: perr.Error(),
				Remedy:  "moves_text entries look like NVDA:2.5 or ALL:-1, separated by commas, semicolons or newlines",
			})
			return
		}
		layers = append(layers, parsed)
	}
	if len(req.Moves) > 0 {
		layers = append(layers, services.NormalizeMoveKeys(req.Moves))
	}
	moves := services.MergeMoves(layers...)

	result, err := services.Project(ctx, nav, snap.Holdings, moves, req.Normalize)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: vErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ProjectionResponse{
		ProjectionResult: *result,
		AsOf:             snap.AsOf,
		Warnings:         wc.GetWarnings(),
	})
}
