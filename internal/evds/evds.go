// Package evds wraps the TCMB EVDS statistics API, the source for currency
// rates, gold ounce prices and deposit interest rates.
package evds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Series identifiers used by the price supplier.
const (
	// SeriesUSDBuy is the USD buying rate against local currency.
	SeriesUSDBuy = "TP.DK.USD.A"
	// SeriesEURBuy is the EUR buying rate against local currency.
	SeriesEURBuy = "TP.DK.EUR.A"
	// SeriesGoldOunceUSD is the gold ounce price in USD.
	SeriesGoldOunceUSD = "TP.DK.XAU.A"
	// SeriesDepositRate is the average annual deposit interest rate in percent.
	SeriesDepositRate = "TP.MRTEVD01"
)

// GramsPerOunce converts troy ounces to grams.
const GramsPerOunce = 31.1035

// Client is the interface the price supplier depends on. It allows mocking
// EVDS access in tests.
type Client interface {
	FetchSeriesValue(ctx context.Context, series string, date time.Time) (float64, error)
}

// APIClient fetches series observations from the EVDS HTTP API. Requests are
// rate limited; the free tier rejects bursts.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewAPIClient creates an EVDS client. apiKey may be empty for anonymous
// access.
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(5), 5),
	}
}

// response mirrors the EVDS JSON envelope. Observation values arrive under a
// key derived from the series name (dots replaced by underscores) and may be
// encoded as either a JSON number or a string.
type response struct {
	Items []map[string]any `json:"items"`
}

// FetchSeriesValue fetches the observation of one series on one date.
// Returns an error when the API has no observation for that date.
func (c *APIClient) FetchSeriesValue(ctx context.Context, series string, date time.Time) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	dateParam := strings.ReplaceAll(date.Format("2006-01-02"), "-", "")

	params := url.Values{}
	params.Set("series", series)
	params.Set("startDate", dateParam)
	params.Set("endDate", dateParam)
	params.Set("type", "json")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
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
		return 0, fmt.Errorf("evds: unexpected status %d for series %s", resp.StatusCode, series)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var parsed response
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, fmt.Errorf("evds: failed to decode response: %w", err)
	}

	if len(parsed.Items) == 0 {
		return 0, fmt.Errorf("evds: no observation for series %s on %s", series, date.Format("2006-01-02"))
	}

	key := strings.ReplaceAll(series, ".", "_")
	raw, ok := parsed.Items[0][key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("evds: no observation for series %s on %s", series, date.Format("2006-01-02"))
	}

	value, err := parseObservation(raw)
	if err != nil {
		return 0, fmt.Errorf("evds: series %s: %w", series, err)
	}

	return value, nil
}

func parseObservation(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		value, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("unparseable observation %q", v)
		}
		return value, nil
	default:
		return 0, fmt.Errorf("unexpected observation type %T", raw)
	}
}
