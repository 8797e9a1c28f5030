package analystnode

import (
	"fmt"
	"strings"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

func Finalize(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if strings.TrimSpace(in.Narrative.Summary) == "" {
		return GraphOutput{}, fmt.Errorf("%w: narrative has no summary", contractx.ErrValidation)
	}

	return GraphOutput{Result: contractx.AnalysisResult{
		Domain:      in.Intent.Domain,
		Subject:     in.Intent.Subject,
		Facts:       in.Facts,
		Sentiment:   in.Sentiment,
		Narrative:   in.Narrative,
		Mode:        in.Mode,
		GeneratedAt: in.Now,
	}}, nil
}
