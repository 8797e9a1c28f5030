package analystnode

import (
	"context"
	"sync"
	"time"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

// CollectFacts fans out to every applicable provider in parallel and joins
// before returning. Each fetch runs under its own deadline so one slow
// upstream cannot stall the batch, and results keep dispatch order so the
// output is stable.
func CollectFacts(
	ctx context.Context,
	in *GraphState,
	providers []contractx.Provider,
	perFetchTimeout time.Duration,
) (*GraphState, error) {
	if in == nil {
		return nil, ErrInvalidIntent
	}

	var applicable []contractx.Provider
	for _, p := range providers {
		if p.Applicable(in.Intent.Subject) {
			applicable = append(applicable, p)
		}
	}

	results := make([]contractx.ProviderResult, len(applicable))
	var wg sync.WaitGroup
	for i, p := range applicable {
		wg.Add(1)
		go func(i int, p contractx.Provider) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, perFetchTimeout)
			defer cancel()
			results[i] = p.Fetch(fetchCtx, in.Intent.Subject)
		}(i, p)
	}
	wg.Wait()

	in.Facts = results
	return in, nil
}
