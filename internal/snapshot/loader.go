package snapshot

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"autochart/internal/symbols"
	"autochart/pkg/exchange"
	"autochart/pkg/iex"

	"go.uber.org/zap"
)

// ErrUnsupportedExchange is returned when a configured exchange has no
// connector adapter. It is the same value as exchange.ErrUnsupportedExchange.
var ErrUnsupportedExchange = exchange.ErrUnsupportedExchange

// MarketConnector lists supported exchanges and loads their markets keyed by
// exchange-native ID.
type MarketConnector interface {
	Exchanges() []string
	LoadMarkets(ctx context.Context, name string) (map[string]exchange.Market, error)
}

// StockSource lists every stock symbol the provider knows about.
type StockSource interface {
	AvailableSymbols(ctx context.Context) ([]iex.Symbol, error)
}

type SymbolLoader struct {
	Exchanges []string
	Connector MarketConnector
	Stocks    StockSource
	Logger    *zap.Logger
	Now       func() time.Time // defaults to time.Now
}

// Load fetches crypto symbols from every configured exchange, one after the
// other, then the stock symbols. Any failure aborts the whole load.
func (l *SymbolLoader) Load(ctx context.Context) (Snapshot, error) {
	tickers, qualified, err := l.LoadCryptoSymbols(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	stocks, err := l.LoadStockSymbols(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	return Snapshot{
		Stocks:                    stocks,
		CryptoTickers:             tickers,
		CryptoTickersWithExchange: qualified,
		LoadedAt:                  now(),
	}, nil
}

// LoadCryptoSymbols returns the de-duplicated bare tickers and the qualified
// tickers accumulated across all configured exchanges.
func (l *SymbolLoader) LoadCryptoSymbols(ctx context.Context) (tickers, qualified []string, err error) {
	supported := make(map[string]bool)
	for _, name := range l.Connector.Exchanges() {
		supported[strings.ToLower(name)] = true
	}

	var bare []string
	qualified = []string{}
	for _, name := range l.Exchanges {
		name = strings.ToLower(strings.TrimSpace(name))
		l.Logger.Info("downloading exchange symbols", zap.String("exchange", name))

		if !supported[name] {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedExchange, name)
		}

		markets, err := l.Connector.LoadMarkets(ctx, name)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s markets: %w", name, err)
		}

		// one entry per listing, ordered by pair then native ID
		list := make([]exchange.Market, 0, len(markets))
		for _, m := range markets {
			list = append(list, m)
		}
		sort.Slice(list, func(i, j int) bool {
			if pi, pj := list[i].Pair(), list[j].Pair(); pi != pj {
				return pi < pj
			}
			return list[i].ID < list[j].ID
		})

		for _, m := range list {
			ticker := symbols.Bare(m.Pair())
			bare = append(bare, ticker)
			qualified = append(qualified, symbols.Qualify(name, ticker))
		}
		l.Logger.Info("loaded exchange symbols", zap.String("exchange", name), zap.Int("count", len(list)))
	}

	return symbols.Dedup(bare), qualified, nil
}

// LoadStockSymbols returns the provider's enabled stock symbols.
func (l *SymbolLoader) LoadStockSymbols(ctx context.Context) ([]string, error) {
	l.Logger.Info("downloading stock symbols")

	rows, err := l.Stocks.AvailableSymbols(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stock symbols: %w", err)
	}

	stocks := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.IsEnabled {
			stocks = append(stocks, row.Symbol)
		}
	}
	l.Logger.Info("loaded stock symbols", zap.Int("count", len(stocks)), zap.Int("disabled", len(rows)-len(stocks)))

	return stocks, nil
}
