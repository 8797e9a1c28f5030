package domains

import (
	"fmt"
	"strings"

	contractx "github.com/finwell-ai/advisor/agent/contract"
	"github.com/finwell-ai/advisor/agent/knowledge"
	"github.com/finwell-ai/advisor/agent/sentiment"
)

type Health struct{}

func (Health) Domain() contractx.Domain { return contractx.DomainHealth }

func (Health) Labels() sentiment.Labels { return sentiment.HealthLabels() }

func (Health) Fallback(req contractx.SynthesisRequest) contractx.Narrative {
	reported := strings.Join(req.Subject.Symptoms, ", ")
	serious := knowledge.IsSerious(reported)

	payload, ok := symptomPayload(req.Facts)
	if !ok || len(payload.Conditions) == 0 {
		outlook := "Consult a medical professional for a proper evaluation."
		if serious {
			outlook = "These symptoms can indicate an emergency. Seek urgent medical care now."
		}
		return contractx.Narrative{
			Summary:     fmt.Sprintf("Reported symptoms (%s) did not match the reference table.", reported),
			KeyFactors:  []string{"no reference match for the reported combination"},
			Outlook:     outlook,
			WatchPoints: []string{"symptom duration", "symptom severity"},
		}
	}

	top := payload.Conditions[0]
	factors := make([]string, 0, len(payload.Conditions)+1)
	for _, c := range payload.Conditions {
		factors = append(factors, fmt.Sprintf("%s (%s, matches %.0f%% of reported symptoms)",
			c.Condition, c.Severity, c.Matched*100))
	}
	if len(payload.Plans) > 0 {
		factors = append(factors, "insurance options: "+strings.Join(payload.Plans, "; "))
	}

	outlook := top.Advice
	if serious || top.Severity == "serious" {
		outlook = "These symptoms can indicate an emergency. Seek urgent medical care now. " + top.Advice
	}

	return contractx.Narrative{
		Summary: fmt.Sprintf("Reported symptoms (%s) most closely resemble %s. This is general information, not a diagnosis.",
			reported, top.Condition),
		KeyFactors:  factors,
		Outlook:     outlook,
		WatchPoints: []string{"worsening or new symptoms", "symptoms lasting beyond a week"},
	}
}
