// Package directory answers symbol queries against an in-memory snapshot of
// exchange and stock symbol lists.
//
// A Directory is loaded once (Open, or New followed by Load) and may be
// reloaded at any time; every reload replaces the whole snapshot. Reads are
// safe during a reload, but concurrent reloads should be serialized by the
// caller.
package directory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"autochart/internal/memorystore"
	"autochart/internal/snapshot"
	"autochart/pkg/fomoddio"
	"autochart/pkg/iex"

	"go.uber.org/zap"
)

// Loader produces a fresh snapshot; *snapshot.SymbolLoader implements it.
type Loader interface {
	Load(ctx context.Context) (snapshot.Snapshot, error)
}

// MoversSource lists the stock market's current top gainers and losers in rank order.
type MoversSource interface {
	MarketGainers(ctx context.Context) ([]iex.Quote, error)
	MarketLosers(ctx context.Context) ([]iex.Quote, error)
}

// SuperfilterSource fetches the filtered coin lists.
type SuperfilterSource interface {
	Superfilter(ctx context.Context) (*fomoddio.Superfilter, error)
}

// Params configures a Directory. A nil Loader, Movers or Filter makes the
// queries that need it fail with ErrNoSource.
type Params struct {
	Exchanges []string // configured crypto exchanges, in load order
	Loader    Loader
	Movers    MoversSource
	Filter    SuperfilterSource
	Rand      *rand.Rand // nil seeds a PCG source from the clock
	Logger    *zap.Logger
}

type Directory struct {
	exchanges []string
	loader    Loader
	movers    MoversSource
	filter    SuperfilterSource
	store     *memorystore.SnapshotStore
	logger    *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New returns an empty directory; call Load before sampling.
func New(p Params) *Directory {
	rng := p.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Directory{
		exchanges: append([]string(nil), p.Exchanges...),
		loader:    p.Loader,
		movers:    p.Movers,
		filter:    p.Filter,
		store:     memorystore.NewSnapshotStore(),
		logger:    logger.Named("directory"),
		rng:       rng,
	}
}

// Open builds a directory and loads it.
func Open(ctx context.Context, p Params) (*Directory, error) {
	d := New(p)
	if err := d.Load(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

// Load fetches crypto then stock symbols and replaces the current snapshot.
// On error the previous snapshot is kept.
func (d *Directory) Load(ctx context.Context) error {
	if d.loader == nil {
		return fmt.Errorf("load symbol data: %w", ErrNoSource)
	}

	snap, err := d.loader.Load(ctx)
	if err != nil {
		d.logger.Error("failed to load symbol data", zap.Error(err))
		return err
	}

	d.store.Replace(snap)
	d.logger.Info("symbol data loaded",
		zap.Int("stocks", len(snap.Stocks)),
		zap.Int("crypto_tickers", len(snap.CryptoTickers)),
		zap.Int("crypto_tickers_with_exchange", len(snap.CryptoTickersWithExchange)),
	)
	return nil
}

// Exchanges returns the configured crypto exchanges.
func (d *Directory) Exchanges() []string {
	return append([]string(nil), d.exchanges...)
}

// Loaded reports whether at least one load has succeeded.
func (d *Directory) Loaded() bool {
	return d.store.Loaded()
}

// Snapshot returns a copy of the current snapshot.
func (d *Directory) Snapshot() snapshot.Snapshot {
	return d.store.Get()
}

func (d *Directory) Stocks() []string {
	return d.store.Get().Stocks
}

func (d *Directory) CryptoTickers() []string {
	return d.store.Get().CryptoTickers
}

func (d *Directory) CryptoTickersWithExchange() []string {
	return d.store.Get().CryptoTickersWithExchange
}

// AllSymbols is stocks, then bare crypto tickers, then qualified crypto tickers.
func (d *Directory) AllSymbols() []string {
	return d.store.Get().AllSymbols()
}

// AllCryptoSymbols is bare crypto tickers followed by qualified ones.
func (d *Directory) AllCryptoSymbols() []string {
	return d.store.Get().AllCryptoSymbols()
}
