package contract

import (
	"strings"
	"time"
)

type Domain string

// Declaration order is the documented tie-break order for intent
// classification; keep stocks first.
const (
	DomainStocks Domain = "stocks"
	DomainCrypto Domain = "crypto"
	DomainHealth Domain = "health"
)

func Domains() []Domain {
	return []Domain{DomainStocks, DomainCrypto, DomainHealth}
}

// Query is the raw inbound request. Immutable after receipt.
type Query struct {
	RawText    string    `json:"raw_text"`
	SenderID   string    `json:"sender_id"`
	ReceivedAt time.Time `json:"received_at"`
}

// Subject identifies what a query is about within a domain: a ticker, a
// token symbol, or a set of symptoms. WalletAddress is set only when a
// crypto query carries an on-chain address.
type Subject struct {
	Symbol        string   `json:"symbol,omitempty"`
	Name          string   `json:"name,omitempty"`
	CanonicalID   string   `json:"canonical_id,omitempty"`
	Symptoms      []string `json:"symptoms,omitempty"`
	WalletAddress string   `json:"wallet_address,omitempty"`
}

func (s Subject) Display() string {
	if s.Symbol != "" {
		return strings.ToUpper(s.Symbol)
	}
	if len(s.Symptoms) > 0 {
		return strings.Join(s.Symptoms, ", ")
	}
	return s.Name
}

func (s Subject) IsZero() bool {
	return s.Symbol == "" && len(s.Symptoms) == 0
}

// Intent is the classified form of a Query.
type Intent struct {
	Domain     Domain  `json:"domain"`
	Subject    Subject `json:"subject"`
	Confidence float64 `json:"confidence"`
}

type ProviderStatus string

const (
	StatusOK      ProviderStatus = "ok"
	StatusPartial ProviderStatus = "partial"
	StatusFailed  ProviderStatus = "failed"
)

type ProviderErrCode string

const (
	ErrCodeTimeout     ProviderErrCode = "timeout"
	ErrCodeRateLimited ProviderErrCode = "rate_limited"
	ErrCodeNotFound    ProviderErrCode = "not_found"
	ErrCodeUpstream    ProviderErrCode = "upstream_error"
)

// ProviderResult is one provider call's outcome. Never mutated after
// creation; transport failures are absorbed into Status+ErrCode instead of
// crossing the provider boundary as Go errors.
type ProviderResult struct {
	SourceID  string          `json:"source_id"`
	Payload   Payload         `json:"payload,omitempty"`
	FetchedAt time.Time       `json:"fetched_at"`
	Status    ProviderStatus  `json:"status"`
	ErrCode   ProviderErrCode `json:"err_code,omitempty"`
	ErrDetail string          `json:"err_detail,omitempty"`
}

func (r ProviderResult) Usable() bool {
	return r.Status != StatusFailed && r.Payload != nil
}

// Payload is the domain-specific data a provider returns. Snippets feeds
// the sentiment scorer; payloads with nothing text-bearing return nil.
type Payload interface {
	Snippets() []string
}

// PricePayload covers both stock quotes and crypto market data.
type PricePayload struct {
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	PriceUSD    float64   `json:"price_usd"`
	MarketCap   float64   `json:"market_cap,omitempty"`
	Volume24h   float64   `json:"volume_24h,omitempty"`
	Change24h   float64   `json:"change_24h"`
	Change7d    float64   `json:"change_7d,omitempty"`
	Change30d   float64   `json:"change_30d,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

func (p *PricePayload) Snippets() []string { return nil }

type NewsItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

type NewsPayload struct {
	Items []NewsItem `json:"items"`
}

func (p *NewsPayload) Snippets() []string {
	out := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		text := strings.TrimSpace(item.Title + " " + item.Description)
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}

// ChainPayload is an on-chain account snapshot.
type ChainPayload struct {
	Address     string   `json:"address"`
	Lamports    int64    `json:"lamports"`
	SOL         float64  `json:"sol"`
	RecentTxSig []string `json:"recent_tx_sigs,omitempty"`
}

func (p *ChainPayload) Snippets() []string { return nil }

// ConditionMatch is one possible condition for a reported symptom set.
type ConditionMatch struct {
	Condition string  `json:"condition"`
	Severity  string  `json:"severity"` // mild | moderate | serious
	Advice    string  `json:"advice"`
	Matched   float64 `json:"matched"` // share of reported symptoms matched
}

type SymptomPayload struct {
	Symptoms   []string         `json:"symptoms"`
	Conditions []ConditionMatch `json:"conditions"`
	Plans      []string         `json:"plans,omitempty"`
}

func (p *SymptomPayload) Snippets() []string {
	out := make([]string, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		out = append(out, c.Condition+" "+c.Advice)
	}
	return out
}

// SentimentResult is derived from text-bearing provider payloads.
// Score is bounded to [-1, 1].
type SentimentResult struct {
	Score      float64  `json:"score"`
	Category   string   `json:"category"`
	SampleSize int      `json:"sample_size"`
	Sources    []string `json:"sources,omitempty"`
}

type SynthesisMode string

const (
	ModeLLM      SynthesisMode = "llm"
	ModeFallback SynthesisMode = "fallback"
)

// Narrative is the synthesized analysis. The fallback path populates every
// field the LLM path would, so the output shape is uniform across modes.
type Narrative struct {
	Summary     string   `json:"summary"`
	KeyFactors  []string `json:"key_factors"`
	Outlook     string   `json:"outlook"`
	WatchPoints []string `json:"watch_points"`
}

// AnalysisResult is the terminal artifact handed back to the Router.
type AnalysisResult struct {
	Domain      Domain           `json:"domain"`
	Subject     Subject          `json:"subject"`
	Facts       []ProviderResult `json:"facts"`
	Sentiment   SentimentResult  `json:"sentiment"`
	Narrative   Narrative        `json:"narrative"`
	Mode        SynthesisMode    `json:"synthesis_mode"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Fact returns the result for a source id, if present.
func (a AnalysisResult) Fact(sourceID string) (ProviderResult, bool) {
	for _, f := range a.Facts {
		if f.SourceID == sourceID {
			return f, true
		}
	}
	return ProviderResult{}, false
}

// Sources lists contributing source ids in dispatch order, usable ones first.
func (a AnalysisResult) Sources() []string {
	ids := make([]string, 0, len(a.Facts))
	for _, f := range a.Facts {
		if f.Usable() {
			ids = append(ids, f.SourceID)
		}
	}
	for _, f := range a.Facts {
		if !f.Usable() {
			ids = append(ids, f.SourceID+" (unavailable)")
		}
	}
	return ids
}
