// Package analyst runs the per-domain analysis pipeline: collect facts,
// score sentiment, synthesize a narrative, finalize.
package analyst

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/finwell-ai/advisor/agent/contract"
	"github.com/finwell-ai/advisor/agent/domains"
	nodex "github.com/finwell-ai/advisor/agent/nodes/analyst"
	"github.com/finwell-ai/advisor/agent/sentiment"
)

var (
	ErrInvalidIntent  = nodex.ErrInvalidIntent
	ErrInvalidSubject = nodex.ErrInvalidSubject
)

const defaultFetchTimeout = 10 * time.Second

type Config struct {
	// FetchTimeout bounds each provider call. Zero means the default.
	FetchTimeout time.Duration
}

type Analyst struct {
	profile     domains.Profile
	providers   []contractx.Provider
	scorer      contractx.Scorer
	synthesizer contractx.Synthesizer

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	fetchTimeout time.Duration
	now          func() time.Time
}

// New builds an analyst for one domain. A nil synthesizer is allowed and
// pins every narrative to the rule-based path.
func New(
	profile domains.Profile,
	providers []contractx.Provider,
	synthesizer contractx.Synthesizer,
	cfg Config,
) (*Analyst, error) {
	if profile == nil {
		return nil, errors.New("domain profile is required")
	}
	if len(providers) == 0 {
		return nil, errors.New("at least one provider is required")
	}

	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}

	a := &Analyst{
		profile:      profile,
		providers:    providers,
		scorer:       sentiment.NewScorer(profile.Labels()),
		synthesizer:  synthesizer,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}

	graphRunner, err := a.compileAnalyzeGraph(context.Background())
	if err != nil {
		return nil, err
	}
	a.graphRunner = graphRunner

	return a, nil
}

func (a *Analyst) Domain() contractx.Domain { return a.profile.Domain() }

func (a *Analyst) Analyze(ctx context.Context, intent contractx.Intent) (contractx.AnalysisResult, error) {
	out, err := a.graphRunner.Invoke(ctx, nodex.GraphInput{Intent: intent})
	if err != nil {
		return contractx.AnalysisResult{}, err
	}
	return out.Result, nil
}
