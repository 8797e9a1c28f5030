// Package render turns an analysis result into the plain-text reply sent
// back to the user.
package render

import (
	"fmt"
	"strings"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

const timestampLayout = "2006-01-02 15:04 UTC"

// Format renders one analysis as a multi-section text block. Every section
// is emitted for every result so replies keep a stable shape across
// domains and synthesis modes.
func Format(result contractx.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s advisory: %s\n", titleCase(string(result.Domain)), result.Subject.Display())
	if result.Subject.Name != "" && result.Subject.Name != result.Subject.Display() {
		fmt.Fprintf(&b, "%s\n", result.Subject.Name)
	}
	b.WriteString("\n")

	b.WriteString(result.Narrative.Summary)
	b.WriteString("\n")

	var facts []string
	for _, f := range result.Facts {
		if line := factLine(f); line != "" {
			facts = append(facts, line)
		}
	}
	if len(facts) > 0 {
		b.WriteString("\nData:\n")
		for _, line := range facts {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}

	if len(result.Narrative.KeyFactors) > 0 {
		b.WriteString("\nKey factors:\n")
		for _, factor := range result.Narrative.KeyFactors {
			fmt.Fprintf(&b, "  - %s\n", factor)
		}
	}

	if result.Narrative.Outlook != "" {
		fmt.Fprintf(&b, "\nOutlook: %s\n", result.Narrative.Outlook)
	}

	if len(result.Narrative.WatchPoints) > 0 {
		b.WriteString("\nWatch:\n")
		for _, point := range result.Narrative.WatchPoints {
			fmt.Fprintf(&b, "  - %s\n", point)
		}
	}

	fmt.Fprintf(&b, "\nSentiment: %s (%.2f, %d snippets)\n",
		result.Sentiment.Category, result.Sentiment.Score, result.Sentiment.SampleSize)

	if sources := result.Sources(); len(sources) > 0 {
		fmt.Fprintf(&b, "Sources: %s\n", strings.Join(sources, ", "))
	}

	mode := "model-assisted"
	if result.Mode == contractx.ModeFallback {
		mode = "rule-based"
	}
	fmt.Fprintf(&b, "Generated %s (%s analysis)\n",
		result.GeneratedAt.UTC().Format(timestampLayout), mode)

	return b.String()
}

// factLine compresses one usable payload into a single line of numbers.
func factLine(f contractx.ProviderResult) string {
	if !f.Usable() {
		return ""
	}
	switch p := f.Payload.(type) {
	case *contractx.PricePayload:
		line := fmt.Sprintf("%s: $%.2f, 24h %+.2f%%", f.SourceID, p.PriceUSD, p.Change24h)
		if p.Change7d != 0 {
			line += fmt.Sprintf(", 7d %+.2f%%", p.Change7d)
		}
		if p.MarketCap > 0 {
			line += fmt.Sprintf(", market cap $%.0f", p.MarketCap)
		}
		return line
	case *contractx.NewsPayload:
		return fmt.Sprintf("%s: %d headlines", f.SourceID, len(p.Items))
	case *contractx.ChainPayload:
		return fmt.Sprintf("%s: wallet holds %.4f SOL, %d recent transactions",
			f.SourceID, p.SOL, len(p.RecentTxSig))
	case *contractx.SymptomPayload:
		return fmt.Sprintf("%s: %d possible conditions for %d symptoms",
			f.SourceID, len(p.Conditions), len(p.Symptoms))
	}
	return ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
