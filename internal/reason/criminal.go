package reason

import (
	"strings"

	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/library"
)

// AssessCriminalLiability scans the facts for the crime patterns of the
// knowledge base and reports constitutive elements and penalties for
// every match.
func (ev *Evaluator) AssessCriminalLiability(facts []string) *legal.CriminalAssessment {
	text := fold(strings.Join(facts, " "))

	crimes := []legal.CrimeAssessment{}
	for _, pattern := range library.CrimePatterns() {
		for _, keyword := range pattern.Keywords {
			if strings.Contains(text, fold(keyword)) {
				crimes = append(crimes, legal.CrimeAssessment{
					Crime:    pattern.Crime,
					Elements: pattern.Elements,
					Penalty:  pattern.Penalty,
				})
				break
			}
		}
	}

	defenses := []string{}
	recommendation := "No se identifican elementos que configuren delito."
	if len(crimes) > 0 {
		defenses = library.CriminalDefenses()
		recommendation = "Se recomienda contactar inmediatamente con un abogado penalista especializado."
	}

	return &legal.CriminalAssessment{
		PotentialCrimes:  crimes,
		PossibleDefenses: defenses,
		Recommendation:   recommendation,
		Disclaimer:       library.Disclaimer,
	}
}
