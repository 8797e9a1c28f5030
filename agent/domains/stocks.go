package domains

import (
	"fmt"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	"github.com/finwell-ai/advisor/agent/sentiment"
)

type Stocks struct{}

func (Stocks) Domain() contractx.Domain { return contractx.DomainStocks }

func (Stocks) Labels() sentiment.Labels { return sentiment.MarketLabels() }

func (Stocks) Fallback(req contractx.SynthesisRequest) contractx.Narrative {
	name := req.Subject.Display()
	if req.Subject.Name != "" {
		name = req.Subject.Name + " (" + name + ")"
	}

	price, havePrice := pricePayload(req.Facts)
	if !havePrice {
		return contractx.Narrative{
			Summary:     fmt.Sprintf("Quote data for %s is currently unavailable, so only limited analysis is possible.", name),
			KeyFactors:  []string{sentimentFactor(req.Sentiment)},
			Outlook:     "Retry once the quote source recovers.",
			WatchPoints: []string{"data source availability"},
		}
	}

	day := trendWord(price.Change24h, 1, 3)
	factors := []string{
		fmt.Sprintf("last close $%.2f, daily move %+.2f%% (%s)", price.PriceUSD, price.Change24h, day),
	}
	if price.Volume24h > 0 {
		factors = append(factors, fmt.Sprintf("session volume %.0f shares", price.Volume24h))
	}
	factors = append(factors, sentimentFactor(req.Sentiment))

	watch := []string{"next session's direction", "headline flow"}
	if abs(price.Change24h) >= 3 {
		watch = append(watch, "follow-through after an outsized daily move")
	}

	return contractx.Narrative{
		Summary: fmt.Sprintf("%s closed at $%.2f, %s on the day. %s.",
			name, price.PriceUSD, day, capitalize(sentimentFactor(req.Sentiment))),
		KeyFactors:  factors,
		Outlook:     outlookFor(price.Change24h, price.Change24h, req.Sentiment),
		WatchPoints: watch,
	}
}
