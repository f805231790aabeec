package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = holdings/scrape, W2xxx = quotes, W3xxx = projection input.
type WarningCode string

const (
	WarnUnresolvedHolding   WarningCode = "W1001" // holdings row did not match the ticker universe (dropped)
	WarnWeightsRenormalized WarningCode = "W1002" // projected weights rescaled to sum to 100%
	WarnWeightSumMismatch   WarningCode = "W1003" // scraped weights do not add up to 100%
	WarnNAVMissing          WarningCode = "W1004" // NAV not found on the fund page
	WarnQuoteMissing        WarningCode = "W2001" // no quote retrieved for a symbol
	WarnQuoteRateLimited    WarningCode = "W2002" // quote provider throttled; partial or stale data in use
	WarnMoveOutOfRange      WarningCode = "W3001" // move percent outside the sane band
)

// Warning represents a non-fatal issue encountered during processing.
// Warnings ride API responses so the dashboard can surface them.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
