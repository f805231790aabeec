package alphavantage

// GlobalQuoteResponse represents the AlphaVantage GLOBAL_QUOTE response.
// When throttled, AlphaVantage answers 200 with a body carrying a Note or
// Information field instead of quote data.
type GlobalQuoteResponse struct {
	GlobalQuote GlobalQuote `json:"Global Quote"`
	Note        string      `json:"Note"`
	Information string      `json:"Information"`
}

// GlobalQuote represents the quote payload. All fields arrive as strings.
type GlobalQuote struct {
	Symbol        string `json:"01. symbol"`
	Open          string `json:"02. open"`
	High          string `json:"03. high"`
	Low           string `json:"04. low"`
	Price         string `json:"05. price"`
	Volume        string `json:"06. volume"`
	LatestDay     string `json:"07. latest trading day"`
	PrevClose     string `json:"08. previous close"`
	Change        string `json:"09. change"`
	ChangePercent string `json:"10. change percent"` // e.g. "1.2345%"
}

// ParsedQuote represents a parsed real-time quote ready for use
type ParsedQuote struct {
	Symbol        string
	Price         float64
	PrevClose     float64
	Change        float64
	ChangePercent float64
	LatestDay     string
}
