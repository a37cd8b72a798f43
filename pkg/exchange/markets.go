package exchange

import (
	"context"
	"strings"

	"autochart/pkg/rest"
)

type marketFetcher func(ctx context.Context, c *rest.Client) ([]Market, error)

func fetchBinanceMarkets(ctx context.Context, c *rest.Client) ([]Market, error) {
	var info binanceExchangeInfo
	if err := c.GetJSON(ctx, "/api/v3/exchangeInfo", nil, &info); err != nil {
		return nil, err
	}

	out := make([]Market, 0, len(info.Symbols))
	for _, s := range info.Symbols {
		out = append(out, Market{
			ID:     s.Symbol,
			Base:   strings.ToUpper(s.BaseAsset),
			Quote:  strings.ToUpper(s.QuoteAsset),
			Active: strings.EqualFold(s.Status, "TRADING"),
		})
	}
	return out, nil
}

func fetchBittrexMarkets(ctx context.Context, c *rest.Client) ([]Market, error) {
	var list []bittrexMarket
	if err := c.GetJSON(ctx, "/v3/markets", nil, &list); err != nil {
		return nil, err
	}

	out := make([]Market, 0, len(list))
	for _, m := range list {
		out = append(out, Market{
			ID:     m.Symbol,
			Base:   strings.ToUpper(m.BaseCurrencySymbol),
			Quote:  strings.ToUpper(m.QuoteCurrencySymbol),
			Active: strings.EqualFold(m.Status, "ONLINE"),
		})
	}
	return out, nil
}

func fetchPoloniexMarkets(ctx context.Context, c *rest.Client) ([]Market, error) {
	var list []poloniexMarket
	if err := c.GetJSON(ctx, "/markets", nil, &list); err != nil {
		return nil, err
	}

	out := make([]Market, 0, len(list))
	for _, m := range list {
		out = append(out, Market{
			ID:     m.Symbol,
			Base:   strings.ToUpper(m.BaseCurrencyName),
			Quote:  strings.ToUpper(m.QuoteCurrencyName),
			Active: strings.EqualFold(m.State, "NORMAL"),
		})
	}
	return out, nil
}
