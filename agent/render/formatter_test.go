package render

import (
	"strings"
	"testing"
	"time"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

func sampleResult() contractx.AnalysisResult {
	return contractx.AnalysisResult{
		Domain:  contractx.DomainCrypto,
		Subject: contractx.Subject{Symbol: "SOL", Name: "Solana", CanonicalID: "solana"},
		Facts: []contractx.ProviderResult{
			{SourceID: "coingecko", Status: contractx.StatusOK, Payload: &contractx.PricePayload{Symbol: "SOL", PriceUSD: 150.25, Change24h: 4.0}},
			{SourceID: "newsfeed", Status: contractx.StatusFailed, ErrCode: contractx.ErrCodeRateLimited},
		},
		Sentiment: contractx.SentimentResult{Score: 0.21, Category: "bullish", SampleSize: 6},
		Narrative: contractx.Narrative{
			Summary:     "Solana is up on the day.",
			KeyFactors:  []string{"24h move +4.0%", "coverage reads moderately bullish"},
			Outlook:     "Trend intact while sentiment holds.",
			WatchPoints: []string{"trading volume"},
		},
		Mode:        contractx.ModeFallback,
		GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatContainsEverySection(t *testing.T) {
	t.Parallel()

	out := Format(sampleResult())
	for _, want := range []string{
		"Crypto advisory: SOL",
		"Solana is up on the day.",
		"Data:",
		"coingecko: $150.25, 24h +4.00%",
		"Key factors:",
		"Outlook: Trend intact",
		"Watch:",
		"Sentiment: bullish (0.21, 6 snippets)",
		"Sources: coingecko, newsfeed (unavailable)",
		"Generated 2026-08-30 12:00 UTC (rule-based analysis)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatModelModeLabel(t *testing.T) {
	t.Parallel()

	result := sampleResult()
	result.Mode = contractx.ModeLLM
	out := Format(result)
	if !strings.Contains(out, "(model-assisted analysis)") {
		t.Fatalf("missing mode label in:\n%s", out)
	}
}

func TestFormatDeterministic(t *testing.T) {
	t.Parallel()

	if Format(sampleResult()) != Format(sampleResult()) {
		t.Fatal("formatting must be deterministic")
	}
}
