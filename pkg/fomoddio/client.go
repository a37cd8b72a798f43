// Package fomoddio reads the fomodd.io coin superfilter.
package fomoddio

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"autochart/pkg/rest"
)

// Superfilter is the /superfilter response: filtered coins per source exchange.
type Superfilter struct {
	Binance Source `json:"BINANCE"`
	Bittrex Source `json:"BITTREX"`
}

type Source struct {
	Coins []string `json:"coins"`
}

type Client struct {
	rest *rest.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{rest: rest.NewClientWithHTTP(baseURL, httpClient)}
}

// Superfilter fetches the current filtered coin lists.
func (c *Client) Superfilter(ctx context.Context) (*Superfilter, error) {
	var out Superfilter
	if err := c.rest.GetJSON(ctx, "/superfilter", nil, &out); err != nil {
		return nil, fmt.Errorf("fomoddio superfilter: %w", err)
	}
	return &out, nil
}
