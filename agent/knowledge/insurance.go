package knowledge

// InsurancePlan is one product recommendation for a monthly income bracket.
type InsurancePlan struct {
	Provider string
	Plan     string
}

// Income bracket boundaries in rupees per month.
const (
	lowIncomeCeiling = 20000
	midIncomeCeiling = 50000
)

var lowIncomePlans = []InsurancePlan{
	{Provider: "Star Health", Plan: "Medi-Classic"},
	{Provider: "Care Health", Plan: "Joy Plan"},
	{Provider: "HDFC ERGO", Plan: "Health Suraksha"},
}

var midIncomePlans = []InsurancePlan{
	{Provider: "Niva Bupa", Plan: "ReAssure"},
	{Provider: "ICICI Lombard", Plan: "iHealth"},
	{Provider: "Tata AIG", Plan: "Medicare"},
}

var highIncomePlans = []InsurancePlan{
	{Provider: "Max Bupa", Plan: "Health Companion"},
	{Provider: "HDFC ERGO", Plan: "Optima Restore"},
	{Provider: "Religare", Plan: "Care Supreme"},
}

// PlansForIncome returns the recommended plans for a monthly income.
func PlansForIncome(monthlyIncome float64) []InsurancePlan {
	switch {
	case monthlyIncome < lowIncomeCeiling:
		return lowIncomePlans
	case monthlyIncome < midIncomeCeiling:
		return midIncomePlans
	default:
		return highIncomePlans
	}
}
