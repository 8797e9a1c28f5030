// Package alphavantage is a typed client for the Alpha Vantage quote API.
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("alphavantage: symbol not found")
	ErrRateLimited = errors.New("alphavantage: rate limited")
)

const maxResponseSizeBytes = 1 << 20

type Config struct {
	BaseURL string        `envconfig:"BASE_URL" split_words:"true" default:"https://www.alphavantage.co"`
	APIKey  string        `envconfig:"API_KEY" split_words:"true" default:"demo"`
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
		return nil, errors.New("alphavantage base url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid alphavantage base url: %w", err)
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

// Quote is the parsed GLOBAL_QUOTE response.
type Quote struct {
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        int64
	High          float64
	Low           float64
	LatestDay     string
}

// The wire format keys fields as "05. price" style strings with every value
// quoted, so the payload is parsed from a string map.
type globalQuoteResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
	Note        string            `json:"Note"`
	Information string            `json:"Information"`
}

func (c *Client) GlobalQuote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))
	if symbol == "" {
		return nil, errors.New("alphavantage symbol is required")
	}

	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/query?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read alphavantage response: %w", err)
	}

	var parsed globalQuoteResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode alphavantage response: %w", err)
	}
	// Free-tier throttling comes back as HTTP 200 with a Note body.
	if parsed.Note != "" {
		return nil, ErrRateLimited
	}
	if len(parsed.GlobalQuote) == 0 {
		return nil, ErrNotFound
	}

	quote := &Quote{
		Symbol:        parsed.GlobalQuote["01. symbol"],
		Price:         parseFloat(parsed.GlobalQuote["05. price"]),
		Change:        parseFloat(parsed.GlobalQuote["09. change"]),
		ChangePercent: parseFloat(strings.TrimSuffix(parsed.GlobalQuote["10. change percent"], "%")),
		Volume:        parseInt(parsed.GlobalQuote["06. volume"]),
		High:          parseFloat(parsed.GlobalQuote["03. high"]),
		Low:           parseFloat(parsed.GlobalQuote["04. low"]),
		LatestDay:     parsed.GlobalQuote["07. latest trading day"],
	}
	if quote.Symbol == "" {
		return nil, ErrNotFound
	}
	return quote, nil
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
