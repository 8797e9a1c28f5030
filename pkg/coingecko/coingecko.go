// Package coingecko is a typed client for the CoinGecko REST API.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("coingecko: coin not found")
	ErrRateLimited = errors.New("coingecko: rate limited")
)

const maxResponseSizeBytes = 2 << 20

type Config struct {
	BaseURL string        `envconfig:"BASE_URL" split_words:"true" default:"https://api.coingecko.com/api/v3"`
	APIKey  string        `envconfig:"API_KEY" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"15s"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("coingecko base url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid coingecko base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Coin is the subset of /coins/{id} this service reads.
type Coin struct {
	ID          string     `json:"id"`
	Symbol      string     `json:"symbol"`
	Name        string     `json:"name"`
	LastUpdated time.Time  `json:"last_updated"`
	MarketData  MarketData `json:"market_data"`
}

type MarketData struct {
	CurrentPrice             map[string]float64 `json:"current_price"`
	MarketCap                map[string]float64 `json:"market_cap"`
	TotalVolume              map[string]float64 `json:"total_volume"`
	PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  float64            `json:"price_change_percentage_7d"`
	PriceChangePercentage30d float64            `json:"price_change_percentage_30d"`
}

func (m MarketData) USD(values map[string]float64) float64 {
	if values == nil {
		return 0
	}
	return values["usd"]
}

// Coin fetches the coin profile with market data for a CoinGecko coin id
// (e.g. "solana", not "SOL").
func (c *Client) Coin(ctx context.Context, coinID string) (*Coin, error) {
	coinID = strings.TrimSpace(strings.ToLower(coinID))
	if coinID == "" {
		return nil, errors.New("coingecko coin id is required")
	}

	endpoint := fmt.Sprintf("%s/coins/%s", c.baseURL, url.PathEscape(coinID))
	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "false")
	params.Set("market_data", "true")
	params.Set("community_data", "false")
	params.Set("developer_data", "false")
	if c.apiKey != "" {
		params.Set("x_cg_api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build coingecko request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("coingecko status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read coingecko response: %w", err)
	}

	var coin Coin
	if err := json.Unmarshal(body, &coin); err != nil {
		return nil, fmt.Errorf("decode coingecko response: %w", err)
	}
	if coin.ID == "" {
		return nil, ErrNotFound
	}
	return &coin, nil
}
