// Package symbols turns exchange market pairs into tickers.
package symbols

import "strings"

var seps = strings.NewReplacer("/", "", "-", "", "_", "")

// Bare normalizes a market pair into a bare ticker: separators removed,
// upper-cased ("btc/usdt" -> "BTCUSDT").
func Bare(pair string) string {
	return strings.ToUpper(seps.Replace(strings.TrimSpace(pair)))
}

// Qualify prefixes a ticker with its upper-cased source name
// ("binance", "BTCUSDT" -> "BINANCE:BTCUSDT").
func Qualify(source, ticker string) string {
	return strings.ToUpper(source) + ":" + ticker
}

// Dedup returns the distinct tickers in first-seen order.
func Dedup(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
