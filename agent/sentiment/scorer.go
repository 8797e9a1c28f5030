package sentiment

import (
	"math"
	"strings"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

// Category thresholds on the normalized compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
	strongThreshold   = 0.15
)

// normalizationAlpha smooths the compound score toward the -1..1 range.
const normalizationAlpha = 15

// negationScope is how many following tokens a negation word affects.
const negationScope = 3

// negationFactor flips and dampens a negated valence.
const negationFactor = -0.74

// Labels names the five buckets a compound score maps into. Each domain
// supplies its own wording.
type Labels struct {
	VeryPositive string
	Positive     string
	Neutral      string
	Negative     string
	VeryNegative string
}

// MarketLabels fits price and news commentary for tradeable assets.
func MarketLabels() Labels {
	return Labels{
		VeryPositive: "very bullish",
		Positive:     "bullish",
		Neutral:      "neutral",
		Negative:     "bearish",
		VeryNegative: "very bearish",
	}
}

// HealthLabels fits condition and treatment commentary.
func HealthLabels() Labels {
	return Labels{
		VeryPositive: "very reassuring",
		Positive:     "reassuring",
		Neutral:      "neutral",
		Negative:     "concerning",
		VeryNegative: "very concerning",
	}
}

// Scorer assigns a compound sentiment score to a batch of text snippets
// using a fixed valence lexicon. Scoring is deterministic and
// order-invariant: snippets are scored independently and averaged.
type Scorer struct {
	labels Labels
}

func NewScorer(labels Labels) *Scorer {
	return &Scorer{labels: labels}
}

func (s *Scorer) Score(snippets []string) contractx.SentimentResult {
	scored := 0
	sum := 0.0
	for _, snippet := range snippets {
		if strings.TrimSpace(snippet) == "" {
			continue
		}
		sum += compound(snippet)
		scored++
	}
	if scored == 0 {
		return contractx.SentimentResult{Score: 0, Category: s.labels.Neutral}
	}
	score := sum / float64(scored)
	return contractx.SentimentResult{
		Score:      score,
		Category:   s.categorize(score),
		SampleSize: scored,
	}
}

func (s *Scorer) categorize(score float64) string {
	switch {
	case score >= strongThreshold:
		return s.labels.VeryPositive
	case score > positiveThreshold:
		return s.labels.Positive
	case score <= -strongThreshold:
		return s.labels.VeryNegative
	case score < negativeThreshold:
		return s.labels.Negative
	default:
		return s.labels.Neutral
	}
}

// compound scores one snippet: sum token valences with negation and booster
// handling, then squash with sum/sqrt(sum^2+alpha).
func compound(snippet string) float64 {
	tokens := tokenize(snippet)
	total := 0.0
	for i, tok := range tokens {
		valence, ok := lexicon[tok]
		if !ok {
			continue
		}
		if boost, ok := boosterBefore(tokens, i); ok {
			if valence > 0 {
				valence += boost
			} else {
				valence -= boost
			}
		}
		if negatedBefore(tokens, i) {
			valence *= negationFactor
		}
		total += valence
	}
	if total == 0 {
		return 0
	}
	return total / math.Sqrt(total*total+normalizationAlpha)
}

func boosterBefore(tokens []string, i int) (float64, bool) {
	if i == 0 {
		return 0, false
	}
	boost, ok := boosters[tokens[i-1]]
	return boost, ok
}

func negatedBefore(tokens []string, i int) bool {
	start := i - negationScope
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if negations[tokens[j]] {
			return true
		}
	}
	return false
}

func tokenize(snippet string) []string {
	lowered := strings.ToLower(snippet)
	// Contractions like "isn't" must survive as one token.
	lowered = strings.ReplaceAll(lowered, "'", "")
	lowered = strings.ReplaceAll(lowered, "’", "")
	return strings.FieldsFunc(lowered, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return false
		}
		return true
	})
}
