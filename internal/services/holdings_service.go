package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Acelogic/Maginator/internal/cache"
	"github.com/Acelogic/Maginator/internal/models"
	"github.com/Acelogic/Maginator/internal/roundhill"
	log "github.com/sirupsen/logrus"
)

// HoldingsService serves fund snapshots: cache first, then the strategy
// chain selected by the fetch method, first success wins.
type HoldingsService struct {
	memCache *cache.MemoryCache
	browser  roundhill.Strategy
	plain    roundhill.Strategy
	method   roundhill.FetchMethod
}

// NewHoldingsService creates a new HoldingsService. method is the default
// fetch preference; individual calls may override it.
func NewHoldingsService(memCache *cache.MemoryCache, browser, plain roundhill.Strategy, method roundhill.FetchMethod) *HoldingsService {
	return &HoldingsService{
		memCache: memCache,
		browser:  browser,
		plain:    plain,
		method:   method,
	}
}

// FetchOptions adjusts a single Fetch call.
type FetchOptions struct {
	// Mode overrides the configured fetch method when non-empty.
	Mode roundhill.FetchMethod
	// ForceRefresh bypasses the cached snapshot.
	ForceRefresh bool
}

// chain returns the strategies to try, in order.
func (s *HoldingsService) chain(method roundhill.FetchMethod) []roundhill.Strategy {
	if method == roundhill.FetchHTTPOnly {
		return []roundhill.Strategy{s.plain}
	}
	return []roundhill.Strategy{s.browser, s.plain}
}

// Fetch returns the current fund snapshot, scraping when the cache is cold.
// Scrape warnings (unresolved rows, weight-sum drift, missing NAV) go to
// the collector in ctx and are replayed on cache hits so a cached snapshot
// surfaces the same caveats the original fetch did. When every strategy
// fails the returned error is a *roundhill.ScrapeError carrying each cause.
func (s *HoldingsService) Fetch(ctx context.Context, opts FetchOptions) (*models.FundSnapshot, error) {
	defer TrackTime("HoldingsService.Fetch", time.Now())

	if !opts.ForceRefresh {
		if snap, warnings, ok := s.memCache.GetSnapshot(); ok {
			log.Debugf("fund snapshot served from cache (fetched %s)", snap.FetchedAt.Format(time.RFC3339))
			for _, w := range warnings {
				AddWarning(ctx, w)
			}
			return snap, nil
		}
	}

	method := s.method
	if opts.Mode != "" {
		method = opts.Mode
	}

	var attempts []roundhill.StrategyError
	for _, strat := range s.chain(method) {
		pd, err := strat.Fetch(ctx)
		if err != nil {
			log.Warnf("%s strategy failed: %v", strat.Name(), err)
			attempts = append(attempts, roundhill.StrategyError{Strategy: strat.Name(), Err: err})
			continue
		}

		holdings, unresolvedRows := ResolveHoldingRows(pd.Rows)
		if len(holdings) == 0 {
			log.Warnf("%s strategy returned no resolvable holdings", strat.Name())
			attempts = append(attempts, roundhill.StrategyError{
				Strategy: strat.Name(),
				Err:      fmt.Errorf("no holdings rows resolved"),
			})
			continue
		}

		snap := &models.FundSnapshot{
			NAV:       pd.NAV,
			HasNAV:    pd.HasNAV,
			AsOf:      pd.AsOf,
			Holdings:  holdings,
			Source:    strat.Name(),
			FetchedAt: time.Now(),
		}

		warnings := snapshotWarnings(snap, unresolvedRows)
		for _, w := range warnings {
			AddWarning(ctx, w)
		}
		s.memCache.SetSnapshot(snap, warnings)

		log.Infof("fund snapshot via %s: %d holdings, nav=%.2f (present=%t), as of %s",
			strat.Name(), len(snap.Holdings), snap.NAV, snap.HasNAV, snap.AsOf)
		return snap, nil
	}

	return nil, &roundhill.ScrapeError{Attempts: attempts}
}

// InvalidateCache drops the cached snapshot so the next Fetch scrapes anew.
func (s *HoldingsService) InvalidateCache() {
	s.memCache.InvalidateSnapshot()
}

// snapshotWarnings derives the scrape warnings stored alongside a snapshot.
func snapshotWarnings(snap *models.FundSnapshot, unresolved []roundhill.Row) []models.Warning {
	var warnings []models.Warning
	for _, r := range unresolved {
		warnings = append(warnings, models.Warning{
			Code:    models.WarnUnresolvedHolding,
			Message: fmt.Sprintf("holding %q (%.2f%%) did not match the ticker universe and was dropped", r.Name, r.Weight*100),
		})
	}
	if w := weightSumWarning(snap.Holdings); w != nil {
		warnings = append(warnings, *w)
	}
	if !snap.HasNAV {
		warnings = append(warnings, models.Warning{
			Code:    models.WarnNAVMissing,
			Message: "NAV not found on the fund page; supply manual_nav for projections",
		})
	}
	return warnings
}
