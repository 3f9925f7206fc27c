package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ramp-gateway/config"
	"ramp-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Forex reads USD-based rates from an exchangerates-style API.
type Forex struct {
	cfg    config.RatesConfig
	client HTTPClient
}

var _ ports.RateFetcher = (*Forex)(nil)

// NewForex creates a rate fetcher.
func NewForex(cfg config.RatesConfig, client HTTPClient) *Forex {
	return &Forex{cfg: cfg, client: client}
}

type latestResponse struct {
	Success *bool                      `json:"success"`
	Base    string                     `json:"base"`
	Rates   map[string]decimal.Decimal `json:"rates"`
}

// Latest returns how many units of symbol one USD buys.
func (f *Forex) Latest(ctx context.Context, symbol string) (decimal.Decimal, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return decimal.Zero, fmt.Errorf("rates: empty symbol")
	}

	q := url.Values{}
	q.Set("base", "USD")
	q.Set("symbols", symbol)
	endpoint := strings.TrimRight(f.cfg.APIURL, "/") + "/latest?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rates: build request: %w", err)
	}
	req.Header.Set("apikey", f.cfg.APIKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Zero, fmt.Errorf("rates: responded %d: %s", resp.StatusCode, raw)
	}

	var out latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return decimal.Zero, fmt.Errorf("rates: decode response: %w", err)
	}
	if out.Success != nil && !*out.Success {
		return decimal.Zero, fmt.Errorf("rates: provider reported failure")
	}

	rate, ok := out.Rates[symbol]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("rates: no rate for %s", symbol)
	}
	return rate, nil
}
