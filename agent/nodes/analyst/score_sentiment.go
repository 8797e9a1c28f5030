package analystnode

import (
	contractx "github.com/finwell-ai/advisor/agent/contract"
)

// ScoreSentiment pools text snippets from every usable fact and scores them
// as one batch. Sources records which providers contributed text.
func ScoreSentiment(in *GraphState, scorer contractx.Scorer) (*GraphState, error) {
	if in == nil {
		return nil, ErrInvalidIntent
	}

	var snippets []string
	var sources []string
	for _, fact := range in.Facts {
		if !fact.Usable() {
			continue
		}
		batch := fact.Payload.Snippets()
		if len(batch) == 0 {
			continue
		}
		snippets = append(snippets, batch...)
		sources = append(sources, fact.SourceID)
	}

	result := scorer.Score(snippets)
	result.Sources = sources
	in.Sentiment = result
	return in, nil
}
