package synthesis

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	promptx "github.com/finwell-ai/advisor/agent/prompt"
)

type fakeCompleter struct {
	reply string
	err   error
	saw   struct {
		system string
		user   string
	}
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.saw.system = system
	f.saw.user = user
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func cryptoRequest() contractx.SynthesisRequest {
	return contractx.SynthesisRequest{
		Domain:  contractx.DomainCrypto,
		Subject: contractx.Subject{Symbol: "BTC", Name: "Bitcoin", CanonicalID: "bitcoin"},
		Facts: []contractx.ProviderResult{
			{
				SourceID: "coingecko",
				Status:   contractx.StatusOK,
				Payload:  &contractx.PricePayload{Symbol: "BTC", PriceUSD: 64000, Change24h: 2.4},
			},
			{
				SourceID: "newsfeed",
				Status:   contractx.StatusFailed,
				ErrCode:  contractx.ErrCodeRateLimited,
			},
		},
		Sentiment: contractx.SentimentResult{Score: 0.2, Category: "bullish", SampleSize: 5},
	}
}

func engineWith(c Completer) *Engine {
	return NewEngine(map[contractx.Domain]Completer{contractx.DomainCrypto: c}, promptx.LoadPromptSet())
}

func TestSynthesizeParsesStrictJSON(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{reply: `{
		"summary": "Bitcoin is up 2.4% over 24 hours with bullish coverage.",
		"key_factors": ["price momentum", "positive headlines"],
		"outlook": "Momentum persists while sentiment holds.",
		"watch_points": ["volume contraction"]
	}`}
	n, err := engineWith(fake).Synthesize(context.Background(), cryptoRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Summary == "" || len(n.KeyFactors) != 2 {
		t.Fatalf("unexpected narrative: %+v", n)
	}
	if fake.saw.system == "" {
		t.Fatal("system prompt missing")
	}
}

func TestSynthesizeUnwrapsFencedReply(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{reply: "```json\n{\"summary\": \"ok\", \"outlook\": \"flat\"}\n```"}
	n, err := engineWith(fake).Synthesize(context.Background(), cryptoRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Summary != "ok" {
		t.Fatalf("unexpected summary: %q", n.Summary)
	}
}

func TestSynthesizeMalformedReplyIsError(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{reply: "Bitcoin looks fine today, nothing to report."}
	_, err := engineWith(fake).Synthesize(context.Background(), cryptoRequest())
	if !errors.Is(err, contractx.ErrSynthesis) {
		t.Fatalf("expected ErrSynthesis, got %v", err)
	}
}

func TestSynthesizeMissingSummaryIsError(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{reply: `{"key_factors": ["x"]}`}
	_, err := engineWith(fake).Synthesize(context.Background(), cryptoRequest())
	if !errors.Is(err, contractx.ErrSynthesis) {
		t.Fatalf("expected ErrSynthesis, got %v", err)
	}
}

func TestSynthesizeCompleterErrorWrapped(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{err: errors.New("upstream 500")}
	_, err := engineWith(fake).Synthesize(context.Background(), cryptoRequest())
	if !errors.Is(err, contractx.ErrSynthesis) {
		t.Fatalf("expected ErrSynthesis, got %v", err)
	}
}

func TestSynthesizeFailedSourcesRedactedToCode(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{reply: `{"summary": "ok"}`}
	if _, err := engineWith(fake).Synthesize(context.Background(), cryptoRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Source newsfeed: unavailable (rate_limited)"; !strings.Contains(fake.saw.user, want) {
		t.Fatalf("user prompt missing %q:\n%s", want, fake.saw.user)
	}
}
