package directory

import (
	"context"
	"fmt"

	"autochart/internal/symbols"
	"autochart/pkg/iex"
)

// TopGainer returns the provider's current biggest gainer.
func (d *Directory) TopGainer(ctx context.Context) (string, error) {
	list, err := d.gainers(ctx)
	if err != nil {
		return "", err
	}
	return first("top gainer", list)
}

// TopGainers returns up to MaxAmount(amount) gainers in provider rank order.
func (d *Directory) TopGainers(ctx context.Context, amount int) ([]string, error) {
	if amount < 1 {
		return nil, fmt.Errorf("top gainers: %w", ErrInvalidAmount)
	}
	list, err := d.gainers(ctx)
	if err != nil {
		return nil, err
	}
	return head(list, amount), nil
}

func (d *Directory) TopLoser(ctx context.Context) (string, error) {
	list, err := d.losers(ctx)
	if err != nil {
		return "", err
	}
	return first("top loser", list)
}

// TopLosers returns up to MaxAmount(amount) losers in provider rank order.
func (d *Directory) TopLosers(ctx context.Context, amount int) ([]string, error) {
	if amount < 1 {
		return nil, fmt.Errorf("top losers: %w", ErrInvalidAmount)
	}
	list, err := d.losers(ctx)
	if err != nil {
		return nil, err
	}
	return head(list, amount), nil
}

// SuperfilteredCoin returns the first superfiltered coin, qualified with its
// source exchange (e.g. "BINANCE:BTCUSDT").
func (d *Directory) SuperfilteredCoin(ctx context.Context) (string, error) {
	coins, err := d.superfiltered(ctx)
	if err != nil {
		return "", err
	}
	return first("superfiltered coin", coins)
}

// SuperfilteredCoins returns up to MaxAmount(amount) qualified coins, BINANCE
// coins first, then BITTREX.
func (d *Directory) SuperfilteredCoins(ctx context.Context, amount int) ([]string, error) {
	if amount < 1 {
		return nil, fmt.Errorf("superfiltered coins: %w", ErrInvalidAmount)
	}
	coins, err := d.superfiltered(ctx)
	if err != nil {
		return nil, err
	}
	return head(coins, amount), nil
}

func (d *Directory) gainers(ctx context.Context) ([]string, error) {
	if d.movers == nil {
		return nil, fmt.Errorf("top gainers: %w", ErrNoSource)
	}
	return symbolsOf(d.movers.MarketGainers(ctx))
}

func (d *Directory) losers(ctx context.Context) ([]string, error) {
	if d.movers == nil {
		return nil, fmt.Errorf("top losers: %w", ErrNoSource)
	}
	return symbolsOf(d.movers.MarketLosers(ctx))
}

func symbolsOf(quotes []iex.Quote, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	out := make([]string, len(quotes))
	for i, q := range quotes {
		out[i] = q.Symbol
	}
	return out, nil
}

func (d *Directory) superfiltered(ctx context.Context) ([]string, error) {
	if d.filter == nil {
		return nil, fmt.Errorf("superfiltered coins: %w", ErrNoSource)
	}
	sf, err := d.filter.Superfilter(ctx)
	if err != nil {
		return nil, err
	}
	if sf == nil {
		return []string{}, nil
	}

	coins := make([]string, 0, len(sf.Binance.Coins)+len(sf.Bittrex.Coins))
	for _, c := range sf.Binance.Coins {
		coins = append(coins, symbols.Qualify("BINANCE", c))
	}
	for _, c := range sf.Bittrex.Coins {
		coins = append(coins, symbols.Qualify("BITTREX", c))
	}
	return coins, nil
}

func first(name string, list []string) (string, error) {
	if len(list) == 0 {
		return "", fmt.Errorf("%s: %w", name, ErrEmptyPool)
	}
	return list[0], nil
}

// head returns the first MaxAmount(amount) entries, or all of them if there are fewer.
func head(list []string, amount int) []string {
	n := min(MaxAmount(amount), len(list))
	return append([]string{}, list[:n]...)
}
