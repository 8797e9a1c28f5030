package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/finwell-ai/advisor/agent/agents/analyst"
	contractx "github.com/finwell-ai/advisor/agent/contract"
	"github.com/finwell-ai/advisor/agent/domains"
	"github.com/finwell-ai/advisor/agent/intent"
	llmx "github.com/finwell-ai/advisor/agent/llm"
	promptx "github.com/finwell-ai/advisor/agent/prompt"
	"github.com/finwell-ai/advisor/agent/providers"
	"github.com/finwell-ai/advisor/agent/router"
	"github.com/finwell-ai/advisor/agent/synthesis"
	alphavantagex "github.com/finwell-ai/advisor/pkg/alphavantage"
	asix "github.com/finwell-ai/advisor/pkg/asi"
	coingeckox "github.com/finwell-ai/advisor/pkg/coingecko"
	configx "github.com/finwell-ai/advisor/pkg/config"
	_ "github.com/finwell-ai/advisor/pkg/logger/autoload"
	newsfeedx "github.com/finwell-ai/advisor/pkg/newsfeed"
	solanax "github.com/finwell-ai/advisor/pkg/solana"
)

type AppConfig struct {
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" split_words:"true" default:"90s"`
	FetchTimeout  time.Duration `envconfig:"FETCH_TIMEOUT" split_words:"true" default:"10s"`
	MonthlyIncome float64       `envconfig:"MONTHLY_INCOME" split_words:"true"`
	QueryTimeout  time.Duration `envconfig:"QUERY_TIMEOUT" split_words:"true" default:"45s"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("ADVISOR")

	r, err := buildRouter(*appCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	fmt.Println("FinWell advisor ready. Ask about a stock, a cryptocurrency, or your health. Ctrl-D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), appCfg.QueryTimeout)
		reply, err := r.Handle(ctx, contractx.Query{
			RawText:    line,
			SenderID:   "cli",
			ReceivedAt: time.Now().UTC(),
		})
		cancel()
		if err != nil {
			log.Error().Err(err).Msg("query failed")
			fmt.Println("Something went wrong handling that. Please try again.")
			continue
		}
		fmt.Println(reply)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("read input")
	}
}

func buildRouter(appCfg AppConfig) (*router.Router, error) {
	avClient, err := alphavantagex.NewClient(*configx.MustNew[alphavantagex.Config]("ALPHAVANTAGE"))
	if err != nil {
		return nil, fmt.Errorf("alphavantage client: %w", err)
	}
	cgClient, err := coingeckox.NewClient(*configx.MustNew[coingeckox.Config]("COINGECKO"))
	if err != nil {
		return nil, fmt.Errorf("coingecko client: %w", err)
	}
	newsClient, err := newsfeedx.NewClient(*configx.MustNew[newsfeedx.Config]("NEWSFEED"))
	if err != nil {
		return nil, fmt.Errorf("newsfeed client: %w", err)
	}
	solClient, err := solanax.NewClient(*configx.MustNew[solanax.Config]("SOLANA"))
	if err != nil {
		return nil, fmt.Errorf("solana client: %w", err)
	}

	llmCfg := configx.MustNew[llmx.Config]("ASI")
	synthesizer := buildSynthesizer(*llmCfg)

	cached := func(p contractx.Provider) contractx.Provider {
		return providers.NewCached(p, appCfg.CacheTTL)
	}

	providerSets := map[contractx.Domain][]contractx.Provider{
		contractx.DomainStocks: {
			cached(providers.NewQuote(avClient)),
			cached(providers.NewNews(newsClient)),
		},
		contractx.DomainCrypto: {
			cached(providers.NewMarket(cgClient)),
			cached(providers.NewNews(newsClient)),
			cached(providers.NewChain(solClient)),
		},
		contractx.DomainHealth: {
			providers.NewSymptoms(appCfg.MonthlyIncome),
		},
	}

	analysts := map[contractx.Domain]contractx.Analyst{}
	for domain, profile := range domains.All() {
		a, err := analyst.New(profile, providerSets[domain], synthesizer, analyst.Config{
			FetchTimeout: appCfg.FetchTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("build %s analyst: %w", domain, err)
		}
		analysts[domain] = a
	}

	return router.New(intent.NewClassifier(), analysts)
}

// buildSynthesizer wires one model client per domain. Without an API key
// every analyst runs rule-based narratives only.
func buildSynthesizer(llmCfg llmx.Config) contractx.Synthesizer {
	if !llmCfg.Enabled() {
		log.Warn().Msg("no model api key configured, narratives will be rule-based")
		return nil
	}

	completers := map[contractx.Domain]synthesis.Completer{}
	for _, domain := range contractx.Domains() {
		clientCfg := llmCfg.ClientConfigFor(domain)
		log.Info().
			Str("domain", string(domain)).
			Str("model", clientCfg.Model).
			Str("api_key", clientCfg.MaskedKey()).
			Msg("model configured")
		completers[domain] = asix.NewClient(clientCfg)
	}
	return synthesis.NewEngine(completers, promptx.LoadPromptSet())
}
