package models

// ProjectionRow is the per-holding breakdown of a projection.
// Weight and ProjectedWeight are fractions; MovePct is a percent number;
// Contribution is the holding's share of the portfolio return as a fraction
// (ContribBps is the same in basis points).
type ProjectionRow struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Weight          float64 `json:"weight"`
	MovePct         float64 `json:"move_pct"`
	Contribution    float64 `json:"contribution"`
	ContribBps      float64 `json:"contrib_bps"`
	ProjectedWeight float64 `json:"projected_weight"`
}

// ProjectionResult is the outcome of one what-if projection.
type ProjectionResult struct {
	BaseNAV           float64         `json:"base_nav"`
	WeightedReturnPct float64         `json:"weighted_return_pct"`
	ProjectedNAV      float64         `json:"projected_nav"`
	Normalized        bool            `json:"normalized"`
	Rows              []ProjectionRow `json:"rows"`
}
