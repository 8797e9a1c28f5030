package llm

import (
	"strings"
	"time"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	asix "github.com/finwell-ai/advisor/pkg/asi"
)

// Config carries the shared model settings plus optional per-domain
// overrides. A missing API key disables synthesis entirely; analysts then
// run on rule-based narratives alone.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://api.asi1.ai/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" default:"asi1-mini"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float64       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`

	StocksModel       string  `envconfig:"STOCKS_MODEL" split_words:"true"`
	CryptoModel       string  `envconfig:"CRYPTO_MODEL" split_words:"true"`
	HealthModel       string  `envconfig:"HEALTH_MODEL" split_words:"true"`
	StocksTemperature float64 `envconfig:"STOCKS_TEMPERATURE" split_words:"true" default:"-1"`
	CryptoTemperature float64 `envconfig:"CRYPTO_TEMPERATURE" split_words:"true" default:"-1"`
	HealthTemperature float64 `envconfig:"HEALTH_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// ClientConfigFor resolves the effective model settings for one domain.
func (c Config) ClientConfigFor(domain contractx.Domain) asix.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch domain {
	case contractx.DomainStocks:
		if v := strings.TrimSpace(c.StocksModel); v != "" {
			modelName = v
		}
		if c.StocksTemperature >= 0 {
			temp = c.StocksTemperature
		}
	case contractx.DomainCrypto:
		if v := strings.TrimSpace(c.CryptoModel); v != "" {
			modelName = v
		}
		if c.CryptoTemperature >= 0 {
			temp = c.CryptoTemperature
		}
	case contractx.DomainHealth:
		if v := strings.TrimSpace(c.HealthModel); v != "" {
			modelName = v
		}
		if c.HealthTemperature >= 0 {
			temp = c.HealthTemperature
		}
	}

	return asix.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: c.MaxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
	}
}
