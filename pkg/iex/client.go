// Package iex is a client for the IEX Cloud stock data API.
package iex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"autochart/pkg/rest"
)

type Client struct {
	rest  *rest.Client
	token string
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, token, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL, token string, httpClient *http.Client) *Client {
	return &Client{rest: rest.NewClientWithHTTP(baseURL, httpClient), token: token}
}

// AvailableSymbols returns every symbol IEX knows about, enabled or not.
func (c *Client) AvailableSymbols(ctx context.Context) ([]Symbol, error) {
	var out []Symbol
	if err := c.get(ctx, "/ref-data/symbols", &out); err != nil {
		return nil, fmt.Errorf("iex symbols: %w", err)
	}
	return out, nil
}

// MarketGainers returns today's top gainers in rank order.
func (c *Client) MarketGainers(ctx context.Context) ([]Quote, error) {
	return c.marketList(ctx, "gainers")
}

// MarketLosers returns today's top losers in rank order.
func (c *Client) MarketLosers(ctx context.Context) ([]Quote, error) {
	return c.marketList(ctx, "losers")
}

func (c *Client) marketList(ctx context.Context, list string) ([]Quote, error) {
	var out []Quote
	if err := c.get(ctx, "/stock/market/list/"+list, &out); err != nil {
		return nil, fmt.Errorf("iex %s: %w", list, err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	q := url.Values{}
	if c.token != "" {
		q.Set("token", c.token)
	}
	return c.rest.GetJSON(ctx, path, q, v)
}
