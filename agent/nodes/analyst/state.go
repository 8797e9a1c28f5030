package analystnode

import (
	"errors"
	"time"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

var (
	ErrInvalidIntent  = errors.New("intent has no domain")
	ErrInvalidSubject = errors.New("intent has no subject")
)

type GraphInput struct {
	Intent contractx.Intent
}

type GraphOutput struct {
	Result contractx.AnalysisResult
}

// GraphState is threaded through the analysis pipeline. Each node fills in
// its own section and leaves the rest untouched.
type GraphState struct {
	Intent contractx.Intent
	Now    time.Time

	Facts     []contractx.ProviderResult
	Sentiment contractx.SentimentResult

	Narrative contractx.Narrative
	Mode      contractx.SynthesisMode
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	if in.Intent.Domain == "" {
		return nil, ErrInvalidIntent
	}
	if in.Intent.Subject.IsZero() {
		return nil, ErrInvalidSubject
	}
	return &GraphState{
		Intent: in.Intent,
		Now:    nowFn().UTC(),
	}, nil
}
