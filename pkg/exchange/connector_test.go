package exchange

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"autochart/pkg/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeExchanges serves the three market-list endpoints from one server.
func newFakeExchanges(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/binance/api/v3/exchangeInfo", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"symbols":[
			{"symbol":"BTCUSDT","status":"TRADING","baseAsset":"BTC","quoteAsset":"USDT"},
			{"symbol":"ETHBTC","status":"BREAK","baseAsset":"ETH","quoteAsset":"BTC"},
			{"symbol":"BROKEN","status":"TRADING","baseAsset":"","quoteAsset":"USDT"}
		]}`))
	})
	mux.HandleFunc("/bittrex/v3/markets", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[
			{"symbol":"BTC-USD","baseCurrencySymbol":"BTC","quoteCurrencySymbol":"USD","status":"ONLINE"},
			{"symbol":"ltc-btc","baseCurrencySymbol":"ltc","quoteCurrencySymbol":"btc","status":"OFFLINE"}
		]`))
	})
	mux.HandleFunc("/poloniex/markets", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[
			{"symbol":"BTC_USDT","baseCurrencyName":"BTC","quoteCurrencyName":"USDT","state":"NORMAL"},
			{"symbol":"TRX_USDT","baseCurrencyName":"TRX","quoteCurrencyName":"USDT","state":"PAUSE"}
		]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestConnector(server *httptest.Server) *Connector {
	return NewConnectorWithHTTP(map[string]string{
		"binance":  server.URL + "/binance",
		"bittrex":  server.URL + "/bittrex",
		"poloniex": server.URL + "/poloniex",
	}, server.Client())
}

// go test -v --run TestLoadMarkets
func TestLoadMarkets(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	connector := newTestConnector(newFakeExchanges(t, &hits))

	tests := []struct {
		exchange string
		want     map[string]Market
	}{
		{
			exchange: "binance",
			want: map[string]Market{
				"BTCUSDT": {ID: "BTCUSDT", Base: "BTC", Quote: "USDT", Active: true},
				"ETHBTC":  {ID: "ETHBTC", Base: "ETH", Quote: "BTC", Active: false},
			},
		},
		{
			exchange: "bittrex",
			want: map[string]Market{
				"BTC-USD": {ID: "BTC-USD", Base: "BTC", Quote: "USD", Active: true},
				"ltc-btc": {ID: "ltc-btc", Base: "LTC", Quote: "BTC", Active: false},
			},
		},
		{
			exchange: "Poloniex",
			want: map[string]Market{
				"BTC_USDT": {ID: "BTC_USDT", Base: "BTC", Quote: "USDT", Active: true},
				"TRX_USDT": {ID: "TRX_USDT", Base: "TRX", Quote: "USDT", Active: false},
			},
		},
	}

	for _, tt := range tests {
		markets, err := connector.LoadMarkets(context.Background(), tt.exchange)
		require.NoError(t, err, tt.exchange)
		assert.Equal(t, tt.want, markets, tt.exchange)
	}
	assert.EqualValues(t, 3, hits.Load())
}

func TestLoadMarkets_KeepsListingsSharingAPair(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"symbol":"BTC-USD","baseCurrencySymbol":"BTC","quoteCurrencySymbol":"USD","status":"ONLINE"},
			{"symbol":"btc-usd","baseCurrencySymbol":"btc","quoteCurrencySymbol":"usd","status":"OFFLINE"}
		]`))
	}))
	defer server.Close()

	connector := NewConnectorWithHTTP(map[string]string{"bittrex": server.URL}, server.Client())

	markets, err := connector.LoadMarkets(context.Background(), "bittrex")
	require.NoError(t, err)
	require.Len(t, markets, 2)
	assert.Equal(t, "BTC/USD", markets["BTC-USD"].Pair())
	assert.Equal(t, "BTC/USD", markets["btc-usd"].Pair())
}

func TestLoadMarkets_Unsupported(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	connector := newTestConnector(newFakeExchanges(t, &hits))

	_, err := connector.LoadMarkets(context.Background(), "coinbase")
	assert.ErrorIs(t, err, ErrUnsupportedExchange)
	assert.Contains(t, err.Error(), "coinbase")
	assert.Zero(t, hits.Load())
}

func TestLoadMarkets_UpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	connector := NewConnectorWithHTTP(map[string]string{"binance": server.URL}, server.Client())

	_, err := connector.LoadMarkets(context.Background(), "binance")
	var se *rest.StatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Contains(t, err.Error(), "binance markets")
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"binance", "bittrex", "poloniex"}, Supported())
	assert.Equal(t, Supported(), NewConnector(nil, 0).Exchanges())
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := ParseID(" BINANCE ")
	require.NoError(t, err)
	assert.Equal(t, Binance, id)
	assert.Equal(t, "BINANCE", id.Prefix())

	_, err = ParseID("coinbase")
	assert.ErrorIs(t, err, ErrUnsupportedExchange)
	assert.False(t, ID("kraken").IsValid())
}

func TestNewConnector_DefaultURLs(t *testing.T) {
	t.Parallel()

	connector := NewConnector(map[string]string{"bittrex": "http://localhost:1234", "kraken": "http://x"}, 0)
	assert.Equal(t, "https://api.binance.com", connector.clients[Binance].BaseURL())
	assert.Equal(t, "http://localhost:1234", connector.clients[Bittrex].BaseURL())
	assert.Equal(t, "https://api.poloniex.com", connector.clients[Poloniex].BaseURL())
	assert.Len(t, connector.clients, 3)
}
