package knowledge

import (
	"sort"
	"strings"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

// Condition is one entry in the built-in symptom reference.
type Condition struct {
	Name     string
	Symptoms []string
	Severity string
	Advice   string
}

// SeriousKeywords force an urgent-care recommendation regardless of any
// condition match.
var SeriousKeywords = []string{
	"chest pain",
	"emergency",
	"critical",
	"shortness of breath",
	"life-threatening",
	"serious",
}

var conditions = []Condition{
	{
		Name:     "Common Cold",
		Symptoms: []string{"cough", "sore throat", "fever", "fatigue"},
		Severity: "mild",
		Advice:   "Rest, stay hydrated, and use over-the-counter remedies. See a doctor if symptoms persist beyond a week.",
	},
	{
		Name:     "Influenza",
		Symptoms: []string{"fever", "fatigue", "headache", "cough"},
		Severity: "moderate",
		Advice:   "Rest and fluids. Antiviral medication helps if started early, so consult a doctor within 48 hours of onset.",
	},
	{
		Name:     "Migraine",
		Symptoms: []string{"headache", "nausea", "dizziness", "migraine"},
		Severity: "moderate",
		Advice:   "Rest in a dark quiet room. Track triggers. Recurring attacks warrant a consultation for preventive treatment.",
	},
	{
		Name:     "Gastroenteritis",
		Symptoms: []string{"nausea", "vomiting", "fever", "fatigue"},
		Severity: "moderate",
		Advice:   "Small sips of oral rehydration solution. Seek care if vomiting lasts more than 24 hours or signs of dehydration appear.",
	},
	{
		Name:     "Allergic Reaction",
		Symptoms: []string{"rash", "cough", "shortness of breath"},
		Severity: "moderate",
		Advice:   "Antihistamines for mild rashes. Any breathing difficulty needs immediate medical attention.",
	},
	{
		Name:     "Muscular Strain",
		Symptoms: []string{"back pain", "fatigue"},
		Severity: "mild",
		Advice:   "Gentle stretching, heat, and rest. Pain radiating to limbs or lasting weeks needs evaluation.",
	},
	{
		Name:     "Cardiac Event",
		Symptoms: []string{"chest pain", "shortness of breath", "dizziness"},
		Severity: "serious",
		Advice:   "Call emergency services immediately. Do not wait for symptoms to pass.",
	},
	{
		Name:     "Insomnia",
		Symptoms: []string{"insomnia", "fatigue", "headache"},
		Severity: "mild",
		Advice:   "Keep a regular sleep schedule and limit screens before bed. Persistent sleeplessness merits a doctor visit.",
	},
}

// MatchConditions ranks conditions by the share of reported symptoms they
// cover. Results are ordered by that share, then severity, then name so
// equal inputs always produce equal output.
func MatchConditions(symptoms []string) []contractx.ConditionMatch {
	reported := map[string]bool{}
	for _, s := range symptoms {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			reported[s] = true
		}
	}
	if len(reported) == 0 {
		return nil
	}

	var matches []contractx.ConditionMatch
	for _, cond := range conditions {
		overlap := 0
		for _, s := range cond.Symptoms {
			if reported[s] {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		matches = append(matches, contractx.ConditionMatch{
			Condition: cond.Name,
			Severity:  cond.Severity,
			Advice:    cond.Advice,
			Matched:   float64(overlap) / float64(len(reported)),
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Matched != matches[j].Matched {
			return matches[i].Matched > matches[j].Matched
		}
		ri, rj := severityRank(matches[i].Severity), severityRank(matches[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return matches[i].Condition < matches[j].Condition
	})
	return matches
}

// IsSerious reports whether the text mentions anything that should route
// straight to urgent care.
func IsSerious(text string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range SeriousKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func severityRank(severity string) int {
	switch severity {
	case "serious":
		return 3
	case "moderate":
		return 2
	case "mild":
		return 1
	}
	return 0
}
