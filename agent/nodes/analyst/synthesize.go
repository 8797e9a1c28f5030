package analystnode

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

// FallbackFunc builds a narrative from facts alone. It must always return a
// fully populated narrative.
type FallbackFunc func(req contractx.SynthesisRequest) contractx.Narrative

// Synthesize asks the model for a narrative and falls back to the
// rule-based builder on any failure. The analysis never fails at this
// stage; the mode records which path produced the narrative.
func Synthesize(
	ctx context.Context,
	in *GraphState,
	synthesizer contractx.Synthesizer,
	fallback FallbackFunc,
) (*GraphState, error) {
	if in == nil {
		return nil, ErrInvalidIntent
	}

	req := contractx.SynthesisRequest{
		Domain:    in.Intent.Domain,
		Subject:   in.Intent.Subject,
		Facts:     in.Facts,
		Sentiment: in.Sentiment,
	}

	if synthesizer != nil {
		narrative, err := synthesizer.Synthesize(ctx, req)
		if err == nil {
			in.Narrative = narrative
			in.Mode = contractx.ModeLLM
			return in, nil
		}
		log.Debug().
			Err(err).
			Str("domain", string(in.Intent.Domain)).
			Msg("synthesis failed, using rule-based narrative")
	}

	in.Narrative = fallback(req)
	in.Mode = contractx.ModeFallback
	return in, nil
}
