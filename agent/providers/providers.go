// Package providers adapts upstream API clients to the Provider contract.
// Adapters never return Go errors; upstream failures become a failed
// ProviderResult with a machine-readable code.
package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	"github.com/finwell-ai/advisor/agent/knowledge"
	alphavantagex "github.com/finwell-ai/advisor/pkg/alphavantage"
	coingeckox "github.com/finwell-ai/advisor/pkg/coingecko"
	newsfeedx "github.com/finwell-ai/advisor/pkg/newsfeed"
	solanax "github.com/finwell-ai/advisor/pkg/solana"
)

const (
	SourceAlphaVantage = "alphavantage"
	SourceCoinGecko    = "coingecko"
	SourceNewsFeed     = "newsfeed"
	SourceSolanaRPC    = "solana-rpc"
	SourceKnowledge    = "knowledge-base"
)

// recentSignatureLimit bounds the on-chain activity sample per wallet.
const recentSignatureLimit = 5

func failed(sourceID string, err error) contractx.ProviderResult {
	return contractx.ProviderResult{
		SourceID:  sourceID,
		FetchedAt: time.Now().UTC(),
		Status:    contractx.StatusFailed,
		ErrCode:   classify(err),
		ErrDetail: err.Error(),
	}
}

func classify(err error) contractx.ProviderErrCode {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return contractx.ErrCodeTimeout
	case errors.Is(err, alphavantagex.ErrRateLimited),
		errors.Is(err, coingeckox.ErrRateLimited),
		errors.Is(err, newsfeedx.ErrRateLimited):
		return contractx.ErrCodeRateLimited
	case errors.Is(err, alphavantagex.ErrNotFound),
		errors.Is(err, coingeckox.ErrNotFound),
		errors.Is(err, solanax.ErrAccountNotFound):
		return contractx.ErrCodeNotFound
	}
	return contractx.ErrCodeUpstream
}

// Quote fetches a stock quote from Alpha Vantage.
type Quote struct {
	client *alphavantagex.Client
}

func NewQuote(client *alphavantagex.Client) *Quote { return &Quote{client: client} }

func (p *Quote) SourceID() string { return SourceAlphaVantage }

func (p *Quote) Applicable(s contractx.Subject) bool { return s.Symbol != "" }

func (p *Quote) Fetch(ctx context.Context, s contractx.Subject) contractx.ProviderResult {
	quote, err := p.client.GlobalQuote(ctx, s.Symbol)
	if err != nil {
		return failed(p.SourceID(), err)
	}
	updated, _ := time.Parse("2006-01-02", quote.LatestDay)
	return contractx.ProviderResult{
		SourceID:  p.SourceID(),
		FetchedAt: time.Now().UTC(),
		Status:    contractx.StatusOK,
		Payload: &contractx.PricePayload{
			Symbol:      quote.Symbol,
			Name:        s.Name,
			PriceUSD:    quote.Price,
			Volume24h:   float64(quote.Volume),
			Change24h:   quote.ChangePercent,
			LastUpdated: updated,
		},
	}
}

// Market fetches token market data from CoinGecko.
type Market struct {
	client *coingeckox.Client
}

func NewMarket(client *coingeckox.Client) *Market { return &Market{client: client} }

func (p *Market) SourceID() string { return SourceCoinGecko }

func (p *Market) Applicable(s contractx.Subject) bool { return s.CanonicalID != "" }

func (p *Market) Fetch(ctx context.Context, s contractx.Subject) contractx.ProviderResult {
	coin, err := p.client.Coin(ctx, s.CanonicalID)
	if err != nil {
		return failed(p.SourceID(), err)
	}
	md := coin.MarketData
	return contractx.ProviderResult{
		SourceID:  p.SourceID(),
		FetchedAt: time.Now().UTC(),
		Status:    contractx.StatusOK,
		Payload: &contractx.PricePayload{
			Symbol:      s.Symbol,
			Name:        coin.Name,
			PriceUSD:    md.USD(md.CurrentPrice),
			MarketCap:   md.USD(md.MarketCap),
			Volume24h:   md.USD(md.TotalVolume),
			Change24h:   md.PriceChangePercentage24h,
			Change7d:    md.PriceChangePercentage7d,
			Change30d:   md.PriceChangePercentage30d,
			LastUpdated: coin.LastUpdated,
		},
	}
}

// News fetches recent headlines about the subject.
type News struct {
	client *newsfeedx.Client
}

func NewNews(client *newsfeedx.Client) *News { return &News{client: client} }

func (p *News) SourceID() string { return SourceNewsFeed }

func (p *News) Applicable(s contractx.Subject) bool {
	return s.Name != "" || s.Symbol != ""
}

func (p *News) Fetch(ctx context.Context, s contractx.Subject) contractx.ProviderResult {
	query := s.Name
	if query == "" {
		query = s.Symbol
	}
	articles, err := p.client.Everything(ctx, query)
	if err != nil {
		if errors.Is(err, newsfeedx.ErrNoResults) {
			// An empty feed is usable; sentiment just has a zero sample.
			return contractx.ProviderResult{
				SourceID:  p.SourceID(),
				FetchedAt: time.Now().UTC(),
				Status:    contractx.StatusPartial,
				Payload:   &contractx.NewsPayload{},
			}
		}
		return failed(p.SourceID(), err)
	}
	items := make([]contractx.NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, contractx.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return contractx.ProviderResult{
		SourceID:  p.SourceID(),
		FetchedAt: time.Now().UTC(),
		Status:    contractx.StatusOK,
		Payload:   &contractx.NewsPayload{Items: items},
	}
}

// Chain fetches wallet balance and recent activity over Solana JSON-RPC.
type Chain struct {
	client *solanax.Client
}

func NewChain(client *solanax.Client) *Chain { return &Chain{client: client} }

func (p *Chain) SourceID() string { return SourceSolanaRPC }

func (p *Chain) Applicable(s contractx.Subject) bool { return s.WalletAddress != "" }

func (p *Chain) Fetch(ctx context.Context, s contractx.Subject) contractx.ProviderResult {
	lamports, err := p.client.Balance(ctx, s.WalletAddress)
	if err != nil {
		return failed(p.SourceID(), err)
	}
	payload := &contractx.ChainPayload{
		Address:  s.WalletAddress,
		Lamports: lamports,
		SOL:      float64(lamports) / solanax.LamportsPerSOL,
	}
	result := contractx.ProviderResult{
		SourceID:  p.SourceID(),
		FetchedAt: time.Now().UTC(),
		Status:    contractx.StatusOK,
		Payload:   payload,
	}
	sigs, err := p.client.Signatures(ctx, s.WalletAddress, recentSignatureLimit)
	if err != nil {
		// Balance alone is still worth reporting.
		result.Status = contractx.StatusPartial
		result.ErrCode = classify(err)
		result.ErrDetail = fmt.Sprintf("signatures: %v", err)
		return result
	}
	payload.RecentTxSig = sigs
	return result
}

// Symptoms consults the built-in condition and insurance reference. It is
// local data, so it never fails.
type Symptoms struct {
	monthlyIncome float64
}

func NewSymptoms(monthlyIncome float64) *Symptoms {
	return &Symptoms{monthlyIncome: monthlyIncome}
}

func (p *Symptoms) SourceID() string { return SourceKnowledge }

func (p *Symptoms) Applicable(s contractx.Subject) bool { return len(s.Symptoms) > 0 }

func (p *Symptoms) Fetch(_ context.Context, s contractx.Subject) contractx.ProviderResult {
	payload := &contractx.SymptomPayload{
		Symptoms:   s.Symptoms,
		Conditions: knowledge.MatchConditions(s.Symptoms),
	}
	if p.monthlyIncome > 0 {
		for _, plan := range knowledge.PlansForIncome(p.monthlyIncome) {
			payload.Plans = append(payload.Plans, plan.Provider+" "+plan.Plan)
		}
	}
	return contractx.ProviderResult{
		SourceID:  p.SourceID(),
		FetchedAt: time.Now().UTC(),
		Status:    contractx.StatusOK,
		Payload:   payload,
	}
}
