// Package setindex proxies the SET marketplace realtime stock endpoint.
// It does no interpretation of the payload; the HTTP boundary forwards the
// upstream body verbatim on success.
package setindex

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	Endpoint string
	APIKey   string

	// Forwarded verbatim as query parameters.
	Market       string
	IndexSector  string
	SecurityType string
	StockSymbol  string
	OddLotFlag   string
}

type Client struct {
	cfg  Config
	rest *resty.Client
}

func New(cfg Config, timeout time.Duration) *Client {
	return &Client{
		cfg:  cfg,
		rest: resty.New().SetTimeout(timeout),
	}
}

// Realtime performs one authenticated GET against the marketplace endpoint
// and returns the raw body and status code. The error is transport-level
// only; upstream failures are reported through the status/body pair so the
// caller can relay them.
func (c *Client) Realtime(ctx context.Context) ([]byte, int, error) {
	res, err := c.rest.R().
		SetContext(ctx).
		SetHeader("api-key", c.cfg.APIKey).
		SetQueryParams(map[string]string{
			"market":       c.cfg.Market,
			"indexSector":  c.cfg.IndexSector,
			"securityType": c.cfg.SecurityType,
			"stockSymbol":  c.cfg.StockSymbol,
			"oddLotFlag":   c.cfg.OddLotFlag,
		}).
		Get(c.cfg.Endpoint)
	if err != nil {
		return nil, 0, fmt.Errorf("set realtime request: %w", err)
	}
	return res.Body(), res.StatusCode(), nil
}
