// Package newsfeed is a typed client for a NewsAPI-compatible article
// search endpoint.
package newsfeed

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
	ErrRateLimited = errors.New("newsfeed: rate limited")
	ErrNoResults   = errors.New("newsfeed: no articles found")
)

const maxResponseSizeBytes = 4 << 20

type Config struct {
	BaseURL  string        `envconfig:"BASE_URL" split_words:"true" default:"https://newsapi.org"`
	APIKey   string        `envconfig:"API_KEY" split_words:"true"`
	PageSize int           `envconfig:"PAGE_SIZE" split_words:"true" default:"10"`
	Timeout  time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"15s"`
}

type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("newsfeed base url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid newsfeed base url: %w", err)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:  baseURL,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type Article struct {
	Source      string
	Title       string
	Description string
	URL         string
	PublishedAt time.Time
}

type everythingResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// Everything searches recent English-language articles for a query,
// newest first.
func (c *Client) Everything(ctx context.Context, query string) ([]Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("newsfeed query is required")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(c.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build newsfeed request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsfeed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read newsfeed response: %w", err)
	}

	var parsed everythingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode newsfeed response: %w", err)
	}
	if parsed.Status != "ok" {
		if parsed.Code == "rateLimited" {
			return nil, ErrRateLimited
		}
		return nil, fmt.Errorf("newsfeed error %s: %s", parsed.Code, parsed.Message)
	}
	if len(parsed.Articles) == 0 {
		return nil, ErrNoResults
	}

	articles := make([]Article, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		if strings.TrimSpace(a.Title) == "" {
			continue
		}
		articles = append(articles, Article{
			Source:      a.Source.Name,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	if len(articles) == 0 {
		return nil, ErrNoResults
	}
	return articles, nil
}
