// Package router maps an inbound query to the right domain analyst and
// shapes the terminal reply. Recoverable classification misses become
// clarification prompts; only configuration gaps surface as errors.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	"github.com/finwell-ai/advisor/agent/render"
)

const (
	clarifyUnknown = "Sorry, I couldn't understand your query. Ask about a stock ticker, a cryptocurrency like BTC or ETH, or describe your symptoms."

	clarifyAmbiguous = "Your message matches more than one topic. Please ask about one thing at a time, like a single stock or a single cryptocurrency."
)

type Router struct {
	classifier contractx.Classifier
	analysts   map[contractx.Domain]contractx.Analyst

	now func() time.Time
}

func New(classifier contractx.Classifier, analysts map[contractx.Domain]contractx.Analyst) (*Router, error) {
	if classifier == nil {
		return nil, errors.New("classifier is required")
	}
	if len(analysts) == 0 {
		return nil, errors.New("at least one analyst is required")
	}
	return &Router{
		classifier: classifier,
		analysts:   analysts,
		now:        time.Now,
	}, nil
}

// Handle runs one query end to end and returns the reply text.
func (r *Router) Handle(ctx context.Context, q contractx.Query) (string, error) {
	raw := strings.TrimSpace(q.RawText)
	if raw == "" {
		return clarifyUnknown, nil
	}

	intent, err := r.classifier.Classify(raw)
	switch {
	case errors.Is(err, contractx.ErrNoSubjectFound):
		log.Debug().Str("sender", q.SenderID).Msg("query had no recognizable subject")
		return clarifyUnknown, nil
	case errors.Is(err, contractx.ErrAmbiguousDomain):
		log.Debug().Str("sender", q.SenderID).Msg("query matched multiple domains")
		return clarifyAmbiguous, nil
	case err != nil:
		return "", fmt.Errorf("classify query: %w", err)
	}

	analyst, ok := r.analysts[intent.Domain]
	if !ok {
		return "", fmt.Errorf("%w: domain=%s", contractx.ErrNoAnalyst, intent.Domain)
	}

	started := r.now()
	result, err := analyst.Analyze(ctx, intent)
	if err != nil {
		return "", fmt.Errorf("analyze %s query: %w", intent.Domain, err)
	}

	log.Info().
		Str("domain", string(intent.Domain)).
		Str("subject", intent.Subject.Display()).
		Str("mode", string(result.Mode)).
		Dur("elapsed", r.now().Sub(started)).
		Msg("query handled")

	return render.Format(result), nil
}
