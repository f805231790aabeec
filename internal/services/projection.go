package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/Acelogic/Maginator/internal/models"
)

const (
	// moveSaneBand flags per-symbol moves beyond this many percent either
	// way. They still compute; the warning exists to catch typos like a
	// missing decimal point.
	moveSaneBand = 50.0

	// normalizeEpsilon is the tolerance inside which projected weights
	// already sum to 1.0 and renormalization is a no-op.
	normalizeEpsilon = 0.001
)

// Project computes the weighted return and projected NAV for a set of
// holdings under the given hypothetical moves. Weights are fractions of
// the fund, moves are percents. A move of exactly -100 zeroes a position;
// anything below -100 is rejected. An empty holdings list is a degenerate
// but valid input: the NAV passes through unchanged with no rows. When
// normalize is set the projected weights are rescaled to sum to 1.0 after
// the NAV math runs, so the reported NAV is never affected by
// renormalization.
func Project(ctx context.Context, nav float64, holdings []models.Holding, moves models.MoveSet, normalize bool) (*models.ProjectionResult, error) {
	if nav <= 0 {
		return nil, &models.ValidationError{Field: "nav", Message: "base NAV must be positive"}
	}
	if err := validateMoves(holdings, moves); err != nil {
		return nil, err
	}
	flagOutsizedMoves(ctx, moves)

	var (
		weightedReturn float64
		rows           = make([]models.ProjectionRow, 0, len(holdings))
	)
	for _, h := range holdings {
		movePct := moves.Resolve(h.Symbol)
		moveFrac := movePct / 100
		contribution := h.Weight * moveFrac
		weightedReturn += contribution

		rows = append(rows, models.ProjectionRow{
			Symbol:          h.Symbol,
			Name:            h.Name,
			Weight:          h.Weight,
			MovePct:         movePct,
			Contribution:    contribution,
			ContribBps:      contribution * 10000,
			ProjectedWeight: h.Weight * (1 + moveFrac),
		})
	}

	result := &models.ProjectionResult{
		BaseNAV:           nav,
		WeightedReturnPct: weightedReturn * 100,
		ProjectedNAV:      nav * (1 + weightedReturn),
		Rows:              rows,
	}
	if normalize {
		result.Normalized = renormalizeRows(ctx, result.Rows)
	}
	return result, nil
}

// validateMoves rejects moves for symbols outside the holdings set and
// moves below -100%, which would imply a negative position value.
func validateMoves(holdings []models.Holding, moves models.MoveSet) error {
	held := make(map[string]bool, len(holdings))
	for _, h := range holdings {
		held[h.Symbol] = true
	}
	for _, key := range sortedMoveKeys(moves) {
		if key != models.MoveAllKey && !held[key] {
			return &models.ValidationError{
				Field:   "moves",
				Message: fmt.Sprintf("%s is not a current holding", key),
			}
		}
		if moves[key] < -100 {
			return &models.ValidationError{
				Field:   "moves",
				Message: fmt.Sprintf("move %.2f%% for %s is below -100%%", moves[key], key),
			}
		}
	}
	return nil
}

// flagOutsizedMoves warns on moves outside the sanity band without
// rejecting them.
func flagOutsizedMoves(ctx context.Context, moves models.MoveSet) {
	for _, key := range sortedMoveKeys(moves) {
		if math.Abs(moves[key]) > moveSaneBand {
			Warningf(ctx, models.WarnMoveOutOfRange, "move %+.1f%% for %s is outside ±%.0f%%", moves[key], key, moveSaneBand)
		}
	}
}

func sortedMoveKeys(moves models.MoveSet) []string {
	keys := make([]string, 0, len(moves))
	for k := range moves {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// renormalizeRows rescales projected weights in place to sum to 1.0.
// Returns whether a rescale actually happened. A non-positive sum (every
// position wiped out) is left alone.
func renormalizeRows(ctx context.Context, rows []models.ProjectionRow) bool {
	var sum float64
	for _, r := range rows {
		sum += r.ProjectedWeight
	}
	if sum <= 0 {
		return false
	}
	if math.Abs(sum-1) <= normalizeEpsilon {
		return false
	}
	Warningf(ctx, models.WarnWeightsRenormalized, "projected weights summed to %.4f; renormalized to 1.0", sum)
	for i := range rows {
		rows[i].ProjectedWeight /= sum
	}
	return true
}

// ResolveNAV picks the base NAV for a projection: a positive manual
// override wins, otherwise the scraped NAV. Returns an error when neither
// is available.
func ResolveNAV(snap *models.FundSnapshot, manualNAV float64) (float64, error) {
	if manualNAV > 0 {
		return manualNAV, nil
	}
	if snap != nil && snap.HasNAV && snap.NAV > 0 {
		return snap.NAV, nil
	}
	return 0, &models.ValidationError{
		Field:   "manual_nav",
		Message: "NAV unavailable from the fund page; supply manual_nav",
	}
}
