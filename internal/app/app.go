// Package app wires configuration, upstream clients and the symbol directory.
package app

import (
	"context"
	"fmt"

	"autochart/config"
	"autochart/internal/directory"
	"autochart/internal/snapshot"
	"autochart/pkg/exchange"
	"autochart/pkg/fomoddio"
	"autochart/pkg/iex"

	"go.uber.org/zap"
)

// NewDirectory builds an unloaded directory from cfg. The IEX token is
// resolved here, so in prod this reads the SSM parameter store.
func NewDirectory(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*directory.Directory, error) {
	var store config.ParameterStore
	if cfg.Environment == "prod" {
		ssmClient, err := config.NewParameterStore(ctx)
		if err != nil {
			return nil, err
		}
		store = ssmClient
	}
	return newDirectory(ctx, cfg, store, logger)
}

func newDirectory(ctx context.Context, cfg *config.Config, store config.ParameterStore, logger *zap.Logger) (*directory.Directory, error) {
	token, err := cfg.IEX.ResolveToken(ctx, cfg.Environment, store)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve iex token: %w", err)
	}
	if token == "" {
		logger.Warn("iex token is empty; stock requests will be rejected upstream")
	}

	connector := exchange.NewConnector(cfg.Exchanges.BaseURL, cfg.Exchanges.Timeout)
	stocks := iex.NewClient(cfg.IEX.BaseURL, token, cfg.IEX.Timeout)
	filter := fomoddio.NewClient(cfg.Fomoddio.BaseURL, cfg.Fomoddio.Timeout)

	loader := &snapshot.SymbolLoader{
		Exchanges: cfg.Exchanges.Enabled,
		Connector: connector,
		Stocks:    stocks,
		Logger:    logger.Named("snapshot"),
	}

	return directory.New(directory.Params{
		Exchanges: cfg.Exchanges.Enabled,
		Loader:    loader,
		Movers:    stocks,
		Filter:    filter,
		Logger:    logger,
	}), nil
}
