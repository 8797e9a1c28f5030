package contract

import "context"

type Classifier interface {
	Classify(raw string) (Intent, error)
}

// Provider fetches one external data source for a subject. Fetch must honor
// the context deadline and absorb every transport failure into the returned
// ProviderResult; it never returns a Go error.
type Provider interface {
	SourceID() string
	Applicable(s Subject) bool
	Fetch(ctx context.Context, s Subject) ProviderResult
}

// Scorer maps text snippets to a bounded sentiment score. Pure, no I/O.
type Scorer interface {
	Score(snippets []string) SentimentResult
}

type SynthesisRequest struct {
	Domain    Domain
	Subject   Subject
	Facts     []ProviderResult
	Sentiment SentimentResult
}

// Synthesizer is the LLM collaborator. Any non-success response, including
// malformed content, is an error; the caller decides what to do with it.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (Narrative, error)
}

type Analyst interface {
	Analyze(ctx context.Context, intent Intent) (AnalysisResult, error)
}
