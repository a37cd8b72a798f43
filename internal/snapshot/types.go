package snapshot

import "time"

// Snapshot is one complete load of the symbol lists. It is never modified
// after Load returns it.
type Snapshot struct {
	Stocks                    []string  // enabled stock symbols, provider order
	CryptoTickers             []string  // bare tickers, each at most once
	CryptoTickersWithExchange []string  // qualified tickers, one per exchange-listed pair
	LoadedAt                  time.Time // zero until the first successful load
}

// AllSymbols is stocks, then bare crypto tickers, then qualified crypto tickers.
func (s Snapshot) AllSymbols() []string {
	out := make([]string, 0, len(s.Stocks)+len(s.CryptoTickers)+len(s.CryptoTickersWithExchange))
	out = append(out, s.Stocks...)
	out = append(out, s.CryptoTickers...)
	return append(out, s.CryptoTickersWithExchange...)
}

// AllCryptoSymbols is bare crypto tickers followed by qualified ones.
func (s Snapshot) AllCryptoSymbols() []string {
	out := make([]string, 0, len(s.CryptoTickers)+len(s.CryptoTickersWithExchange))
	out = append(out, s.CryptoTickers...)
	return append(out, s.CryptoTickersWithExchange...)
}
