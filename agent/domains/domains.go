// Package domains holds the per-domain advisory profiles: which sentiment
// vocabulary applies and how to build a narrative from raw facts when the
// model is unavailable. Fallback narratives fill every field the model
// would, so downstream rendering never branches on mode.
package domains

import (
	"fmt"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	"github.com/finwell-ai/advisor/agent/sentiment"
)

// Profile is one domain's advisory behavior.
type Profile interface {
	Domain() contractx.Domain
	Labels() sentiment.Labels
	Fallback(req contractx.SynthesisRequest) contractx.Narrative
}

// All returns every profile keyed by domain.
func All() map[contractx.Domain]Profile {
	return map[contractx.Domain]Profile{
		contractx.DomainStocks: Stocks{},
		contractx.DomainCrypto: Crypto{},
		contractx.DomainHealth: Health{},
	}
}

func pricePayload(facts []contractx.ProviderResult) (*contractx.PricePayload, bool) {
	for _, f := range facts {
		if !f.Usable() {
			continue
		}
		if p, ok := f.Payload.(*contractx.PricePayload); ok {
			return p, true
		}
	}
	return nil, false
}

func chainPayload(facts []contractx.ProviderResult) (*contractx.ChainPayload, bool) {
	for _, f := range facts {
		if !f.Usable() {
			continue
		}
		if p, ok := f.Payload.(*contractx.ChainPayload); ok {
			return p, true
		}
	}
	return nil, false
}

func symptomPayload(facts []contractx.ProviderResult) (*contractx.SymptomPayload, bool) {
	for _, f := range facts {
		if !f.Usable() {
			continue
		}
		if p, ok := f.Payload.(*contractx.SymptomPayload); ok {
			return p, true
		}
	}
	return nil, false
}

// Daily and weekly percentage-change bands shared by the market domains.
func trendWord(changePct, mild, sharp float64) string {
	switch {
	case changePct >= sharp:
		return "sharply higher"
	case changePct >= mild:
		return "higher"
	case changePct <= -sharp:
		return "sharply lower"
	case changePct <= -mild:
		return "lower"
	}
	return "little changed"
}

func sentimentFactor(s contractx.SentimentResult) string {
	if s.SampleSize == 0 {
		return "no recent coverage to gauge sentiment"
	}
	intensity := "moderately"
	if abs(s.Score) > 0.5 {
		intensity = "strongly"
	} else if abs(s.Score) < 0.2 {
		intensity = "mildly"
	}
	return fmt.Sprintf("coverage reads %s %s across %d snippets", intensity, s.Category, s.SampleSize)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
