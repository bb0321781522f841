// Package coingecko wraps the CoinGecko API, the source for historical
// Bitcoin prices. Prices are returned in USD.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client is the interface the price supplier depends on.
type Client interface {
	BitcoinUSD(ctx context.Context, date time.Time) (float64, error)
}

// APIClient fetches historical coin prices from the CoinGecko HTTP API.
// The free tier is aggressively rate limited, so requests go through a
// conservative limiter.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewAPIClient creates a CoinGecko client.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// historyResponse mirrors the relevant slice of the coin history payload.
// MarketData is absent for dates CoinGecko has no data for.
type historyResponse struct {
	MarketData *struct {
		CurrentPrice map[string]float64 `json:"current_price"`
	} `json:"market_data"`
}

// BitcoinUSD fetches the Bitcoin price in USD on a date.
// Returns an error when CoinGecko has no data for that date.
func (c *APIClient) BitcoinUSD(ctx context.Context, date time.Time) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	// CoinGecko expects DD-MM-YYYY
	url := fmt.Sprintf("%s/coins/bitcoin/history?date=%s", c.baseURL, date.Format("02-01-2006"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("coingecko: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var parsed historyResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, fmt.Errorf("coingecko: failed to decode response: %w", err)
	}

	if parsed.MarketData == nil {
		return 0, fmt.Errorf("coingecko: no market data for %s", date.Format("2006-01-02"))
	}

	price, ok := parsed.MarketData.CurrentPrice["usd"]
	if !ok || price <= 0 {
		return 0, fmt.Errorf("coingecko: no USD price for %s", date.Format("2006-01-02"))
	}

	return price, nil
}
