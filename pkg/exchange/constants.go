package exchange

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedExchange is returned for exchange names the connector has no adapter for.
var ErrUnsupportedExchange = errors.New("unsupported exchange")

// ID names a crypto exchange, lower case (e.g. "binance").
type ID string

// ExchangeMeta holds the public REST endpoint and the market-list fetcher for an exchange.
type ExchangeMeta struct {
	DefaultBaseURL string
	fetch          marketFetcher
}

const (
	Binance  ID = "binance"
	Bittrex  ID = "bittrex"
	Poloniex ID = "poloniex"
)

var supportedExchanges = map[ID]ExchangeMeta{
	Binance:  {DefaultBaseURL: "https://api.binance.com", fetch: fetchBinanceMarkets},
	Bittrex:  {DefaultBaseURL: "https://api.bittrex.com", fetch: fetchBittrexMarkets},
	Poloniex: {DefaultBaseURL: "https://api.poloniex.com", fetch: fetchPoloniexMarkets},
}

// IsValid reports whether the exchange has an adapter.
func (id ID) IsValid() bool {
	_, ok := supportedExchanges[id]
	return ok
}

// Prefix is the qualified-ticker prefix for the exchange, e.g. "BINANCE".
func (id ID) Prefix() string {
	return strings.ToUpper(string(id))
}

// ParseID parses an exchange name case-insensitively.
func ParseID(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if !id.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedExchange, s)
	}
	return id, nil
}

// Supported lists every exchange with an adapter, sorted.
func Supported() []string {
	out := make([]string, 0, len(supportedExchanges))
	for id := range supportedExchanges {
		out = append(out, string(id))
	}
	sort.Strings(out)
	return out
}
