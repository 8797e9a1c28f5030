package solana

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func rpcServer(t *testing.T, handler func(method string) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode rpc request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(handler(req.Method)))
	}))
}

func TestBalance(t *testing.T) {
	t.Parallel()

	srv := rpcServer(t, func(method string) string {
		if method != "getBalance" {
			t.Errorf("unexpected method: %s", method)
		}
		return `{"jsonrpc": "2.0", "id": 1, "result": {"value": 2500000000}}`
	})
	defer srv.Close()

	client, err := NewClient(Config{RPCURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lamports, err := client.Balance(context.Background(), "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lamports != 2_500_000_000 {
		t.Fatalf("unexpected balance: %d", lamports)
	}
	if sol := float64(lamports) / LamportsPerSOL; sol != 2.5 {
		t.Fatalf("unexpected conversion: %f", sol)
	}
}

func TestSignatures(t *testing.T) {
	t.Parallel()

	srv := rpcServer(t, func(method string) string {
		if method != "getSignaturesForAddress" {
			t.Errorf("unexpected method: %s", method)
		}
		return `{"jsonrpc": "2.0", "id": 1, "result": [
			{"signature": "sigA"},
			{"signature": "sigB"}
		]}`
	})
	defer srv.Close()

	client, err := NewClient(Config{RPCURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sigs, err := client.Signatures(context.Background(), "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sigs) != 2 || sigs[0] != "sigA" {
		t.Fatalf("unexpected signatures: %v", sigs)
	}
}

func TestRPCErrorSurface(t *testing.T) {
	t.Parallel()

	srv := rpcServer(t, func(string) string {
		return `{"jsonrpc": "2.0", "id": 1, "error": {"code": -32602, "message": "invalid param"}}`
	})
	defer srv.Close()

	client, err := NewClient(Config{RPCURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Balance(context.Background(), "bad"); err == nil {
		t.Fatal("expected rpc error")
	}
}
