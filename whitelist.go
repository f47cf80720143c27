package fisco730

// Sovereign-bond tracker tickers taxed at the preferential 12.5% rate.
// Bonds issued by states on the ministerial whitelist (D.M. 4/9/1996) keep
// the government-bond rate even when held through a tracker.
var bondTickerWhitelist = map[string]struct{}{
	"CHINABOND": {}, // Chinese government bonds
	"EUROGOV":   {}, // Eurozone government bonds
	"JAPGOVIES": {}, // Japanese government bonds
	"USGOVIES":  {}, // US government bonds
}

// IsWhitelistedTicker reports whether a ticker is on the sovereign-bond
// whitelist and therefore taxed at the preferential rate.
func IsWhitelistedTicker(ticker string) bool {
	_, ok := bondTickerWhitelist[ticker]
	return ok
}
