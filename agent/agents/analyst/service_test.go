package analyst

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	"github.com/finwell-ai/advisor/agent/domains"
)

type fakeProvider struct {
	id     string
	fail   bool
	delay  time.Duration
	change float64
}

func (p *fakeProvider) SourceID() string { return p.id }

func (p *fakeProvider) Applicable(contractx.Subject) bool { return true }

func (p *fakeProvider) Fetch(ctx context.Context, s contractx.Subject) contractx.ProviderResult {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return contractx.ProviderResult{
				SourceID: p.id,
				Status:   contractx.StatusFailed,
				ErrCode:  contractx.ErrCodeTimeout,
				ErrDetail: ctx.Err().Error(),
			}
		}
	}
	if p.fail {
		return contractx.ProviderResult{
			SourceID: p.id,
			Status:   contractx.StatusFailed,
			ErrCode:  contractx.ErrCodeUpstream,
		}
	}
	return contractx.ProviderResult{
		SourceID: p.id,
		Status:   contractx.StatusOK,
		Payload:  &contractx.PricePayload{Symbol: s.Symbol, PriceUSD: 100, Change24h: p.change},
	}
}

type fakeSynthesizer struct {
	narrative contractx.Narrative
	err       error
	calls     int
}

func (f *fakeSynthesizer) Synthesize(context.Context, contractx.SynthesisRequest) (contractx.Narrative, error) {
	f.calls++
	if f.err != nil {
		return contractx.Narrative{}, f.err
	}
	return f.narrative, nil
}

func cryptoIntent() contractx.Intent {
	return contractx.Intent{
		Domain:     contractx.DomainCrypto,
		Subject:    contractx.Subject{Symbol: "BTC", Name: "Bitcoin", CanonicalID: "bitcoin"},
		Confidence: 1,
	}
}

func TestAnalyzeModelPath(t *testing.T) {
	t.Parallel()

	synth := &fakeSynthesizer{narrative: contractx.Narrative{
		Summary: "model summary",
		Outlook: "model outlook",
	}}
	a, err := New(domains.Crypto{}, []contractx.Provider{&fakeProvider{id: "prices", change: 2}}, synth, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := a.Analyze(context.Background(), cryptoIntent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Mode != contractx.ModeLLM {
		t.Fatalf("unexpected mode: %s", result.Mode)
	}
	if result.Narrative.Summary != "model summary" {
		t.Fatalf("unexpected narrative: %+v", result.Narrative)
	}
	if synth.calls != 1 {
		t.Fatalf("expected one synthesis call, got %d", synth.calls)
	}
}

func TestAnalyzeFallsBackOnSynthesisFailure(t *testing.T) {
	t.Parallel()

	synth := &fakeSynthesizer{err: errors.New("model down")}
	a, err := New(domains.Crypto{}, []contractx.Provider{&fakeProvider{id: "prices", change: 2}}, synth, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := a.Analyze(context.Background(), cryptoIntent())
	if err != nil {
		t.Fatalf("analysis must not fail when the model does: %v", err)
	}
	if result.Mode != contractx.ModeFallback {
		t.Fatalf("unexpected mode: %s", result.Mode)
	}
	if result.Narrative.Summary == "" || result.Narrative.Outlook == "" {
		t.Fatalf("fallback narrative incomplete: %+v", result.Narrative)
	}
}

func TestAnalyzeNilSynthesizerUsesFallback(t *testing.T) {
	t.Parallel()

	a, err := New(domains.Crypto{}, []contractx.Provider{&fakeProvider{id: "prices"}}, nil, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := a.Analyze(context.Background(), cryptoIntent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Mode != contractx.ModeFallback {
		t.Fatalf("unexpected mode: %s", result.Mode)
	}
}

func TestAnalyzeAllProvidersFailedStillCompletes(t *testing.T) {
	t.Parallel()

	providers := []contractx.Provider{
		&fakeProvider{id: "prices", fail: true},
		&fakeProvider{id: "news", fail: true},
	}
	a, err := New(domains.Crypto{}, providers, nil, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := a.Analyze(context.Background(), cryptoIntent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(result.Facts))
	}
	for _, f := range result.Facts {
		if f.Status != contractx.StatusFailed {
			t.Fatalf("unexpected status: %+v", f)
		}
	}
	if result.Narrative.Summary == "" {
		t.Fatal("expected a degraded narrative")
	}
}

func TestAnalyzeBoundsSlowProviders(t *testing.T) {
	t.Parallel()

	providers := []contractx.Provider{
		&fakeProvider{id: "fast", change: 1},
		&fakeProvider{id: "slow", delay: time.Second},
	}
	a, err := New(domains.Crypto{}, providers, nil, Config{FetchTimeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start := time.Now()
	result, err := a.Analyze(context.Background(), cryptoIntent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("analysis not bounded by fetch timeout, took %s", elapsed)
	}

	slow, ok := result.Fact("slow")
	if !ok {
		t.Fatal("missing slow provider fact")
	}
	if slow.ErrCode != contractx.ErrCodeTimeout {
		t.Fatalf("unexpected err code: %s", slow.ErrCode)
	}
	fast, ok := result.Fact("fast")
	if !ok || fast.Status != contractx.StatusOK {
		t.Fatalf("fast provider result corrupted: %+v", fast)
	}
}

type fakeNewsProvider struct {
	titles []string
}

func (p *fakeNewsProvider) SourceID() string { return "news" }

func (p *fakeNewsProvider) Applicable(contractx.Subject) bool { return true }

func (p *fakeNewsProvider) Fetch(context.Context, contractx.Subject) contractx.ProviderResult {
	items := make([]contractx.NewsItem, 0, len(p.titles))
	for _, title := range p.titles {
		items = append(items, contractx.NewsItem{Title: title, Source: "wire"})
	}
	return contractx.ProviderResult{
		SourceID: "news",
		Status:   contractx.StatusOK,
		Payload:  &contractx.NewsPayload{Items: items},
	}
}

func TestAnalyzeSolRisingWithPositiveCoverage(t *testing.T) {
	t.Parallel()

	providers := []contractx.Provider{
		&fakeProvider{id: "prices", change: 5},
		&fakeNewsProvider{titles: []string{
			"Solana rallies on strong network growth",
			"Developers report successful upgrade",
			"Funds turn bullish on Solana",
		}},
	}
	a, err := New(domains.Crypto{}, providers, nil, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	intent := contractx.Intent{
		Domain:  contractx.DomainCrypto,
		Subject: contractx.Subject{Symbol: "SOL", Name: "Solana", CanonicalID: "solana"},
	}
	result, err := a.Analyze(context.Background(), intent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Mode != contractx.ModeFallback {
		t.Fatalf("unexpected mode: %s", result.Mode)
	}
	if result.Sentiment.Score <= 0 {
		t.Fatalf("expected positive sentiment, got %f", result.Sentiment.Score)
	}
	if result.Sentiment.Category != "bullish" && result.Sentiment.Category != "very bullish" {
		t.Fatalf("unexpected category: %s", result.Sentiment.Category)
	}
	if result.Sentiment.SampleSize != 3 {
		t.Fatalf("unexpected sample size: %d", result.Sentiment.SampleSize)
	}
	if !strings.Contains(result.Narrative.Summary, "SOL") {
		t.Fatalf("summary does not name the subject: %q", result.Narrative.Summary)
	}
}

func TestAnalyzeRejectsEmptySubject(t *testing.T) {
	t.Parallel()

	a, err := New(domains.Crypto{}, []contractx.Provider{&fakeProvider{id: "prices"}}, nil, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = a.Analyze(context.Background(), contractx.Intent{Domain: contractx.DomainCrypto})
	if !errors.Is(err, ErrInvalidSubject) {
		t.Fatalf("expected ErrInvalidSubject, got %v", err)
	}
}
