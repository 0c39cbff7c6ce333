package analysis

import "strings"

var academicSignals = []string{
	"abstract",
	"introduction",
	"methodology",
	"results",
	"discussion",
	"conclusion",
	"references",
	"et al.",
	"p-value",
	"hypothesis",
	"statistical",
}

var businessSignals = []string{
	"executive summary",
	"stakeholder",
	"roi",
	"kpi",
	"deliverable",
	"milestone",
	"quarterly",
}

// DocumentType labels a document academic, business, or general from
// vocabulary signals. The label selects the Bayesian prior and contextual
// adjustments.
func DocumentType(text string) string {
	lower := strings.ToLower(text)
	academicScore := 0
	for _, s := range academicSignals {
		if strings.Contains(lower, s) {
			academicScore++
		}
	}
	businessScore := 0
	for _, s := range businessSignals {
		if strings.Contains(lower, s) {
			businessScore++
		}
	}
	if academicScore > 5 {
		return "academic"
	}
	if businessScore > 3 {
		return "business"
	}
	return "general"
}
