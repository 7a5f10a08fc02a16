package prices

import "strings"

// cryptoSymbols maps common crypto tickers and names to Yahoo Finance
// USD pairs
var cryptoSymbols = map[string]string{
	"BTC":       "BTC-USD",
	"BITCOIN":   "BTC-USD",
	"ETH":       "ETH-USD",
	"ETHEREUM":  "ETH-USD",
	"XRP":       "XRP-USD",
	"RIPPLE":    "XRP-USD",
	"SOL":       "SOL-USD",
	"SOLANA":    "SOL-USD",
	"ADA":       "ADA-USD",
	"CARDANO":   "ADA-USD",
	"DOT":       "DOT1-USD",
	"POLKADOT":  "DOT1-USD",
	"MATIC":     "MATIC-USD",
	"POLYGON":   "MATIC-USD",
	"AVAX":      "AVAX-USD",
	"AVALANCHE": "AVAX-USD",
}

// NormalizeSymbol converts a raw ticker into the Yahoo Finance symbol
// format. Crypto tickers map to their USD pair (BTC becomes BTC-USD,
// unknown crypto tickers get a -USD suffix); everything else is
// uppercased and trimmed as-is.
func NormalizeSymbol(symbol, category string) string {
	normalized := strings.ToUpper(strings.TrimSpace(symbol))

	if category == "crypto" {
		if mapped, ok := cryptoSymbols[normalized]; ok {
			return mapped
		}
		if strings.HasSuffix(normalized, "-USD") {
			return normalized
		}
		return normalized + "-USD"
	}

	return normalized
}
