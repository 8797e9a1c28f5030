package analystnode

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

type failingSynthesizer struct {
	err error
}

func (s failingSynthesizer) Synthesize(_ context.Context, _ contractx.SynthesisRequest) (contractx.Narrative, error) {
	return contractx.Narrative{}, s.err
}

// Swaps the global logger, so this test must not run in parallel.
func TestSynthesizeLogsSwallowedError(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	defer func() { log.Logger = prev }()

	state := &GraphState{
		Intent: contractx.Intent{
			Domain:  contractx.DomainCrypto,
			Subject: contractx.Subject{Symbol: "SOL", CanonicalID: "solana"},
		},
		Now: time.Now().UTC(),
	}
	fallback := func(req contractx.SynthesisRequest) contractx.Narrative {
		return contractx.Narrative{Summary: "rule-based summary", Outlook: "neutral"}
	}

	out, err := Synthesize(context.Background(), state, failingSynthesizer{err: errors.New("model unreachable")}, fallback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Mode != contractx.ModeFallback {
		t.Fatalf("unexpected mode: %s", out.Mode)
	}
	if out.Narrative.Summary != "rule-based summary" {
		t.Fatalf("unexpected narrative: %+v", out.Narrative)
	}
	if !strings.Contains(buf.String(), "model unreachable") {
		t.Fatalf("synthesis error not logged: %q", buf.String())
	}
}

func TestSynthesizeWithoutSynthesizerIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	defer func() { log.Logger = prev }()

	state := &GraphState{
		Intent: contractx.Intent{
			Domain:  contractx.DomainHealth,
			Subject: contractx.Subject{Symptoms: []string{"fever"}},
		},
		Now: time.Now().UTC(),
	}
	fallback := func(req contractx.SynthesisRequest) contractx.Narrative {
		return contractx.Narrative{Summary: "rule-based summary"}
	}

	out, err := Synthesize(context.Background(), state, nil, fallback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Mode != contractx.ModeFallback {
		t.Fatalf("unexpected mode: %s", out.Mode)
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}
