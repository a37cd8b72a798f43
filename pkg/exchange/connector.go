// Package exchange loads tradable market lists from crypto exchanges' public REST APIs.
package exchange

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"autochart/pkg/rest"
)

// Connector dispatches market-list requests to the per-exchange adapters.
type Connector struct {
	clients map[ID]*rest.Client
}

// NewConnector builds a connector for every supported exchange. baseURLs
// overrides the public endpoint per exchange name; unknown names are ignored.
func NewConnector(baseURLs map[string]string, timeout time.Duration) *Connector {
	return NewConnectorWithHTTP(baseURLs, &http.Client{Timeout: timeout})
}

func NewConnectorWithHTTP(baseURLs map[string]string, httpClient *http.Client) *Connector {
	clients := make(map[ID]*rest.Client, len(supportedExchanges))
	for id, meta := range supportedExchanges {
		baseURL := meta.DefaultBaseURL
		if override := baseURLs[string(id)]; override != "" {
			baseURL = override
		}
		clients[id] = rest.NewClientWithHTTP(baseURL, httpClient)
	}
	return &Connector{clients: clients}
}

// Exchanges lists the exchange names this connector can load.
func (c *Connector) Exchanges() []string {
	return Supported()
}

// LoadMarkets fetches the exchange's listed markets keyed by their
// exchange-native ID, so listings that share a base and quote stay distinct.
func (c *Connector) LoadMarkets(ctx context.Context, name string) (map[string]Market, error) {
	id, err := ParseID(name)
	if err != nil {
		return nil, err
	}

	list, err := supportedExchanges[id].fetch(ctx, c.clients[id])
	if err != nil {
		return nil, fmt.Errorf("%s markets: %w", id, err)
	}

	markets := make(map[string]Market, len(list))
	for _, m := range list {
		if m.Base == "" || m.Quote == "" {
			continue
		}
		markets[m.ID] = m
	}
	return markets, nil
}
