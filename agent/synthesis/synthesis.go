// Package synthesis turns collected facts into a narrative through the
// model API. It performs no fallback itself; callers catch the error and
// decide.
package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	promptx "github.com/finwell-ai/advisor/agent/prompt"
)

// Completer is the minimal model surface the engine needs. *asi.Client
// satisfies it.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Engine renders a per-domain prompt from the request and parses the
// model's strict-JSON reply into a Narrative.
type Engine struct {
	completers map[contractx.Domain]Completer
	prompts    promptx.PromptSet
}

func NewEngine(completers map[contractx.Domain]Completer, prompts promptx.PromptSet) *Engine {
	return &Engine{completers: completers, prompts: prompts}
}

func (e *Engine) Synthesize(ctx context.Context, req contractx.SynthesisRequest) (contractx.Narrative, error) {
	completer, ok := e.completers[req.Domain]
	if !ok || completer == nil {
		return contractx.Narrative{}, fmt.Errorf("%w: no model configured for domain=%s", contractx.ErrSynthesis, req.Domain)
	}
	system := e.prompts.For(req.Domain)
	if system == "" {
		return contractx.Narrative{}, fmt.Errorf("%w: no prompt for domain=%s", contractx.ErrSynthesis, req.Domain)
	}

	user, err := renderRequest(req)
	if err != nil {
		return contractx.Narrative{}, fmt.Errorf("%w: render request: %v", contractx.ErrSynthesis, err)
	}

	raw, err := completer.Complete(ctx, system, user)
	if err != nil {
		return contractx.Narrative{}, fmt.Errorf("%w: %v", contractx.ErrSynthesis, err)
	}

	narrative, err := parseNarrative(raw)
	if err != nil {
		return contractx.Narrative{}, fmt.Errorf("%w: %v", contractx.ErrSynthesis, err)
	}
	return narrative, nil
}

// renderRequest serializes the subject, usable facts, and sentiment into
// the user message. Failed sources are listed by code only so the model
// cannot hallucinate around missing data.
func renderRequest(req contractx.SynthesisRequest) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s", req.Subject.Display())
	if req.Subject.Name != "" {
		fmt.Fprintf(&b, " (%s)", req.Subject.Name)
	}
	b.WriteString("\n\n")

	for _, fact := range req.Facts {
		if !fact.Usable() {
			fmt.Fprintf(&b, "Source %s: unavailable (%s)\n\n", fact.SourceID, fact.ErrCode)
			continue
		}
		encoded, err := json.Marshal(fact.Payload)
		if err != nil {
			return "", fmt.Errorf("encode payload from %s: %w", fact.SourceID, err)
		}
		fmt.Fprintf(&b, "Source %s:\n%s\n\n", fact.SourceID, encoded)
	}

	fmt.Fprintf(&b, "Aggregate sentiment: %s (score %.3f across %d snippets)\n",
		req.Sentiment.Category, req.Sentiment.Score, req.Sentiment.SampleSize)
	return b.String(), nil
}

func parseNarrative(raw string) (contractx.Narrative, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return contractx.Narrative{}, fmt.Errorf("empty completion")
	}

	var narrative contractx.Narrative
	if err := json.Unmarshal([]byte(cleaned), &narrative); err != nil {
		return contractx.Narrative{}, fmt.Errorf("decode completion: %v", err)
	}
	if strings.TrimSpace(narrative.Summary) == "" {
		return contractx.Narrative{}, fmt.Errorf("completion missing summary")
	}
	return narrative, nil
}

// stripFences unwraps a ```json fenced block if the model added one and
// trims any prose around the outermost JSON object.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
