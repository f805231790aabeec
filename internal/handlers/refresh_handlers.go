package handlers

import (
	"net/http"

	"github.com/Acelogic/Maginator/internal/models"
	"github.com/Acelogic/Maginator/internal/services"
	"github.com/gin-gonic/gin"
)

// RefreshHandler handles the dashboard's manual-refresh button.
type RefreshHandler struct {
	holdingsSvc *services.HoldingsService
	quoteSvc    *services.QuoteService
}

// NewRefreshHandler creates a new RefreshHandler
func NewRefreshHandler(holdingsSvc *services.HoldingsService, quoteSvc *services.QuoteService) *RefreshHandler {
	return &RefreshHandler{
		holdingsSvc: holdingsSvc,
		quoteSvc:    quoteSvc,
	}
}

// Refresh handles POST /api/refresh. It drops both caches so the next
// fund or quote request hits the sources again.
func (h *RefreshHandler) Refresh(c *gin.Context) {
	h.holdingsSvc.InvalidateCache()
	h.quoteSvc.InvalidateCache()

	c.JSON(http.StatusOK, models.RefreshResponse{
		Cleared: []string{"holdings", "quotes"},
	})
}
