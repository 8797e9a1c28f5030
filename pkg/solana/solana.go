// Package solana is a minimal JSON-RPC client for Solana account queries.
package solana

import (
	"bytes"
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

// 1 SOL = 1_000_000_000 lamports.
const LamportsPerSOL = 1_000_000_000

const maxResponseSizeBytes = 1 << 20

var ErrAccountNotFound = errors.New("solana: account not found")

type Config struct {
	RPCURL  string        `envconfig:"RPC_URL" split_words:"true" default:"https://api.mainnet-beta.solana.com"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"15s"`
}

type Client struct {
	rpcURL     string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	rpcURL := strings.TrimSpace(cfg.RPCURL)
	if rpcURL == "" {
		return nil, errors.New("solana rpc url is required")
	}
	if _, err := url.ParseRequestURI(rpcURL); err != nil {
		return nil, fmt.Errorf("invalid solana rpc url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		rpcURL: rpcURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("solana rpc request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("solana rpc status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("read rpc response: %w", err)
	}

	var parsed rpcResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("decode rpc response: %w", err)
	}
	if parsed.Error != nil {
		return fmt.Errorf("solana rpc error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if parsed.Result == nil {
		return ErrAccountNotFound
	}
	if err := json.Unmarshal(parsed.Result, out); err != nil {
		return fmt.Errorf("decode rpc result: %w", err)
	}
	return nil
}

// Balance returns the lamport balance of an address.
func (c *Client) Balance(ctx context.Context, address string) (int64, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return 0, errors.New("solana address is required")
	}

	var result struct {
		Value int64 `json:"value"`
	}
	if err := c.call(ctx, "getBalance", []any{address}, &result); err != nil {
		return 0, err
	}
	return result.Value, nil
}

// Signatures returns up to limit recent transaction signatures for an
// address, newest first.
func (c *Client) Signatures(ctx context.Context, address string, limit int) ([]string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.New("solana address is required")
	}
	if limit <= 0 {
		limit = 10
	}

	var result []struct {
		Signature string `json:"signature"`
	}
	err := c.call(ctx, "getSignaturesForAddress", []any{address, map[string]any{"limit": limit}}, &result)
	if err != nil {
		return nil, err
	}

	sigs := make([]string, 0, len(result))
	for _, r := range result {
		if r.Signature != "" {
			sigs = append(sigs, r.Signature)
		}
	}
	return sigs, nil
}
