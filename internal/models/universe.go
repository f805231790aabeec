package models

// Universe is the fixed set of tickers the fund holds. MAGS tracks the
// "Magnificent Seven" and nothing else, so the set is a constant of the
// system rather than configuration.
var Universe = []string{"NVDA", "AAPL", "MSFT", "GOOGL", "AMZN", "META", "TSLA"}

// UniverseSymbols returns a copy of the universe in canonical order.
func UniverseSymbols() []string {
	symbols := make([]string, len(Universe))
	copy(symbols, Universe)
	return symbols
}

// IsUniverseSymbol reports whether symbol is one of the seven tickers.
func IsUniverseSymbol(symbol string) bool {
	for _, s := range Universe {
		if s == symbol {
			return true
		}
	}
	return false
}
