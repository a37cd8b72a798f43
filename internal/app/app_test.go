package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autochart/config"
	"autochart/internal/directory"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type staticParameterStore struct {
	value string
	err   error
}

func (s staticParameterStore) GetParameter(context.Context, *ssm.GetParameterInput, ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(s.value)}}, nil
}

func newUpstream(t *testing.T, token string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/binance/api/v3/exchangeInfo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"symbols":[
			{"symbol":"BTCUSDT","status":"TRADING","baseAsset":"BTC","quoteAsset":"USDT"},
			{"symbol":"ETHUSDT","status":"TRADING","baseAsset":"ETH","quoteAsset":"USDT"}
		]}`))
	})
	mux.HandleFunc("/bittrex/v3/markets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"symbol":"BTC-USDT","baseCurrencySymbol":"BTC","quoteCurrencySymbol":"USDT","status":"ONLINE"}]`))
	})
	mux.HandleFunc("/poloniex/markets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"symbol":"TRX_USDT","baseCurrencyName":"TRX","quoteCurrencyName":"USDT","state":"NORMAL"}]`))
	})
	iexAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("token") != token {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next(w, r)
		}
	}
	mux.HandleFunc("/iex/ref-data/symbols", iexAuth(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"symbol":"AAA","isEnabled":true},{"symbol":"BBB","isEnabled":false}]`))
	}))
	mux.HandleFunc("/iex/stock/market/list/gainers", iexAuth(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"symbol":"UP1"},{"symbol":"UP2"}]`))
	}))
	mux.HandleFunc("/fomoddio/superfilter", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"BINANCE":{"coins":["BTCUSDT"]},"BITTREX":{"coins":["ADABTC"]}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testConfig(server *httptest.Server, env string) *config.Config {
	return &config.Config{
		Environment: env,
		Exchanges: config.ExchangesConfig{
			Enabled: []string{"binance", "bittrex", "poloniex"},
			Timeout: 5 * time.Second,
			BaseURL: map[string]string{
				"binance":  server.URL + "/binance",
				"bittrex":  server.URL + "/bittrex",
				"poloniex": server.URL + "/poloniex",
			},
		},
		IEX: config.IEXConfig{
			BaseURL:        server.URL + "/iex",
			Token:          "pk_dev",
			TokenParameter: "IEX_TOKEN",
			Timeout:        5 * time.Second,
		},
		Fomoddio: config.FomoddioConfig{BaseURL: server.URL + "/fomoddio", Timeout: 5 * time.Second},
	}
}

func TestNewDirectory_EndToEnd(t *testing.T) {
	t.Parallel()

	server := newUpstream(t, "pk_dev")
	ctx := context.Background()

	dir, err := newDirectory(ctx, testConfig(server, "dev"), nil, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, dir.Load(ctx))

	assert.Equal(t, []string{"binance", "bittrex", "poloniex"}, dir.Exchanges())
	assert.Equal(t, []string{"AAA"}, dir.Stocks())
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT", "TRXUSDT"}, dir.CryptoTickers())
	assert.Equal(t, []string{
		"BINANCE:BTCUSDT", "BINANCE:ETHUSDT",
		"BITTREX:BTCUSDT",
		"POLONIEX:TRXUSDT",
	}, dir.CryptoTickersWithExchange())

	gainer, err := dir.TopGainer(ctx)
	require.NoError(t, err)
	assert.Equal(t, "UP1", gainer)

	coins, err := dir.SuperfilteredCoins(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"BINANCE:BTCUSDT", "BITTREX:ADABTC"}, coins)

	picked, err := dir.RandomCryptos(4)
	require.NoError(t, err)
	assert.Len(t, picked, 4)
}

func TestNewDirectory_ProdTokenFromParameterStore(t *testing.T) {
	t.Parallel()

	server := newUpstream(t, "sk_prod")
	ctx := context.Background()

	dir, err := newDirectory(ctx, testConfig(server, "prod"), staticParameterStore{value: "sk_prod"}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, dir.Load(ctx))
	assert.Equal(t, []string{"AAA"}, dir.Stocks())
}

func TestNewDirectory_ParameterStoreError(t *testing.T) {
	t.Parallel()

	server := newUpstream(t, "sk_prod")
	boom := errors.New("no credentials")

	_, err := newDirectory(context.Background(), testConfig(server, "prod"), staticParameterStore{err: boom}, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, boom)
}

func TestNewDirectory_UnsupportedExchange(t *testing.T) {
	t.Parallel()

	server := newUpstream(t, "pk_dev")
	cfg := testConfig(server, "dev")
	cfg.Exchanges.Enabled = []string{"binance", "coinbase"}
	ctx := context.Background()

	dir, err := newDirectory(ctx, cfg, nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	err = dir.Load(ctx)
	assert.ErrorIs(t, err, directory.ErrUnsupportedExchange)
	assert.False(t, dir.Loaded())
}
