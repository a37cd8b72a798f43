package exchange

// Market is one tradable pair listed by an exchange. The connector keys
// markets by ID.
type Market struct {
	ID     string // exchange-native symbol, e.g. "BTCUSDT", "BTC-USDT", "BTC_USDT"
	Base   string
	Quote  string
	Active bool
}

// Pair returns the unified pair name, BASE/QUOTE (e.g. "BTC/USDT").
func (m Market) Pair() string {
	return m.Base + "/" + m.Quote
}

// binanceExchangeInfo is the subset of GET /api/v3/exchangeInfo we read.
type binanceExchangeInfo struct {
	Symbols []struct {
		Symbol     string `json:"symbol"`     // e.g. "BTCUSDT"
		Status     string `json:"status"`     // "TRADING", "BREAK", ...
		BaseAsset  string `json:"baseAsset"`  // e.g. "BTC"
		QuoteAsset string `json:"quoteAsset"` // e.g. "USDT"
	} `json:"symbols"`
}

// bittrexMarket is one entry of GET /v3/markets.
type bittrexMarket struct {
	Symbol              string `json:"symbol"` // e.g. "BTC-USDT"
	BaseCurrencySymbol  string `json:"baseCurrencySymbol"`
	QuoteCurrencySymbol string `json:"quoteCurrencySymbol"`
	Status              string `json:"status"` // "ONLINE" or "OFFLINE"
}

// poloniexMarket is one entry of GET /markets.
type poloniexMarket struct {
	Symbol            string `json:"symbol"` // e.g. "BTC_USDT"
	BaseCurrencyName  string `json:"baseCurrencyName"`
	QuoteCurrencyName string `json:"quoteCurrencyName"`
	State             string `json:"state"` // "NORMAL", "PAUSE", "OFFLINE"
}
