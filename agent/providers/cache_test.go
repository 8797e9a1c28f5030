package providers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

type countingProvider struct {
	calls  atomic.Int64
	status contractx.ProviderStatus
	delay  time.Duration
}

func (p *countingProvider) SourceID() string { return "counting" }

func (p *countingProvider) Applicable(contractx.Subject) bool { return true }

func (p *countingProvider) Fetch(_ context.Context, s contractx.Subject) contractx.ProviderResult {
	p.calls.Add(1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if p.status == contractx.StatusFailed {
		return contractx.ProviderResult{
			SourceID: "counting",
			Status:   contractx.StatusFailed,
			ErrCode:  contractx.ErrCodeUpstream,
		}
	}
	return contractx.ProviderResult{
		SourceID: "counting",
		Status:   contractx.StatusOK,
		Payload:  &contractx.PricePayload{Symbol: s.Symbol, PriceUSD: 1},
	}
}

func TestCachedServesFromMemoryUntilExpiry(t *testing.T) {
	t.Parallel()

	inner := &countingProvider{status: contractx.StatusOK}
	cached := NewCached(inner, time.Minute)

	now := time.Unix(1_700_000_000, 0)
	cached.now = func() time.Time { return now }

	subject := contractx.Subject{Symbol: "BTC", CanonicalID: "bitcoin"}
	cached.Fetch(context.Background(), subject)
	cached.Fetch(context.Background(), subject)
	if got := inner.calls.Load(); got != 1 {
		t.Fatalf("expected 1 upstream call, got %d", got)
	}

	now = now.Add(2 * time.Minute)
	cached.Fetch(context.Background(), subject)
	if got := inner.calls.Load(); got != 2 {
		t.Fatalf("expected refetch after expiry, got %d calls", got)
	}
}

func TestCachedDistinctSubjects(t *testing.T) {
	t.Parallel()

	inner := &countingProvider{status: contractx.StatusOK}
	cached := NewCached(inner, time.Minute)

	cached.Fetch(context.Background(), contractx.Subject{Symbol: "BTC", CanonicalID: "bitcoin"})
	cached.Fetch(context.Background(), contractx.Subject{Symbol: "ETH", CanonicalID: "ethereum"})
	if got := inner.calls.Load(); got != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", got)
	}
}

func TestCachedDoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	inner := &countingProvider{status: contractx.StatusFailed}
	cached := NewCached(inner, time.Minute)

	subject := contractx.Subject{Symbol: "BTC", CanonicalID: "bitcoin"}
	cached.Fetch(context.Background(), subject)
	cached.Fetch(context.Background(), subject)
	if got := inner.calls.Load(); got != 2 {
		t.Fatalf("failed results must not be cached, got %d calls", got)
	}
}

func TestCachedCoalescesConcurrentFetches(t *testing.T) {
	t.Parallel()

	inner := &countingProvider{status: contractx.StatusOK, delay: 50 * time.Millisecond}
	cached := NewCached(inner, time.Minute)

	subject := contractx.Subject{Symbol: "SOL", CanonicalID: "solana"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cached.Fetch(context.Background(), subject)
		}()
	}
	wg.Wait()

	if got := inner.calls.Load(); got != 1 {
		t.Fatalf("expected coalesced single upstream call, got %d", got)
	}
}
