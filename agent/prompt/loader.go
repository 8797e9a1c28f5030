package prompt

import (
	_ "embed"
	"strings"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

var (
	//go:embed template/stocks.txt
	stocksRaw string

	//go:embed template/crypto.txt
	cryptoRaw string

	//go:embed template/health.txt
	healthRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Stocks string
	Crypto string
	Health string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// This is safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Stocks: strings.TrimSpace(stocksRaw),
		Crypto: strings.TrimSpace(cryptoRaw),
		Health: strings.TrimSpace(healthRaw),
	}
}

// For returns the system prompt for a domain, empty if unknown.
func (p PromptSet) For(domain contractx.Domain) string {
	switch domain {
	case contractx.DomainStocks:
		return p.Stocks
	case contractx.DomainCrypto:
		return p.Crypto
	case contractx.DomainHealth:
		return p.Health
	}
	return ""
}
