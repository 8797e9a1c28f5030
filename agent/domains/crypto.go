package domains

import (
	"fmt"
	"strings"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	"github.com/finwell-ai/advisor/agent/sentiment"
)

// Market cap tiers in USD.
const (
	largeCapFloor = 100e9
	midCapFloor   = 10e9
	smallCapFloor = 1e9
)

// Volume to market cap ratio bands.
const (
	turnoverVeryHigh = 0.15
	turnoverElevated = 0.10
	turnoverThin     = 0.03
)

type Crypto struct{}

func (Crypto) Domain() contractx.Domain { return contractx.DomainCrypto }

func (Crypto) Labels() sentiment.Labels { return sentiment.MarketLabels() }

func (Crypto) Fallback(req contractx.SynthesisRequest) contractx.Narrative {
	name := req.Subject.Display()
	price, havePrice := pricePayload(req.Facts)
	if !havePrice {
		return contractx.Narrative{
			Summary:     fmt.Sprintf("Market data for %s is currently unavailable, so only limited analysis is possible.", name),
			KeyFactors:  []string{sentimentFactor(req.Sentiment)},
			Outlook:     "Retry once market data sources recover.",
			WatchPoints: []string{"data source availability"},
		}
	}

	day := trendWord(price.Change24h, 2, 5)
	week := trendWord(price.Change7d, 5, 10)

	factors := []string{
		fmt.Sprintf("24h move %+.1f%% (%s), 7d move %+.1f%% (%s)", price.Change24h, day, price.Change7d, week),
		fmt.Sprintf("%s asset at $%.2f", capTier(price.MarketCap), price.PriceUSD),
	}
	if turnover := turnoverFactor(price); turnover != "" {
		factors = append(factors, turnover)
	}
	factors = append(factors, sentimentFactor(req.Sentiment))

	watch := []string{"24h price trend", "trading volume"}
	if chain, ok := chainPayload(req.Facts); ok {
		factors = append(factors, fmt.Sprintf("wallet %s holds %.4f SOL with %d recent transactions",
			shortAddress(chain.Address), chain.SOL, len(chain.RecentTxSig)))
		watch = append(watch, "wallet activity")
	}
	if price.Change24h*price.Change7d < 0 {
		watch = append(watch, "short-term trend reversal against the weekly direction")
	}

	return contractx.Narrative{
		Summary: fmt.Sprintf("%s trades at $%.2f, %s over 24 hours and %s on the week. %s.",
			name, price.PriceUSD, day, week, capitalize(sentimentFactor(req.Sentiment))),
		KeyFactors:  factors,
		Outlook:     outlookFor(price.Change24h, price.Change7d, req.Sentiment),
		WatchPoints: watch,
	}
}

func capTier(marketCap float64) string {
	switch {
	case marketCap >= largeCapFloor:
		return "large-cap"
	case marketCap >= midCapFloor:
		return "mid-cap"
	case marketCap >= smallCapFloor:
		return "small-cap"
	case marketCap > 0:
		return "micro-cap"
	}
	return "unsized"
}

func turnoverFactor(price *contractx.PricePayload) string {
	if price.MarketCap <= 0 || price.Volume24h <= 0 {
		return ""
	}
	ratio := price.Volume24h / price.MarketCap
	switch {
	case ratio > turnoverVeryHigh:
		return fmt.Sprintf("very high turnover, 24h volume is %.0f%% of market cap", ratio*100)
	case ratio > turnoverElevated:
		return fmt.Sprintf("turnover above average, 24h volume is %.0f%% of market cap", ratio*100)
	case ratio < turnoverThin:
		return fmt.Sprintf("thin turnover, 24h volume is %.1f%% of market cap", ratio*100)
	}
	return ""
}

func outlookFor(change24h, change7d float64, s contractx.SentimentResult) string {
	aligned := change24h >= 0 && change7d >= 0 && s.Score >= 0 ||
		change24h <= 0 && change7d <= 0 && s.Score <= 0
	if aligned {
		return "Price action and coverage point in the same direction; expect the current trend to continue until one of them turns."
	}
	return "Price action and coverage disagree, which often precedes a volatile stretch; treat short-term moves with caution."
}

func shortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:4] + "..." + addr[len(addr)-4:]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
