package reason

import (
	"strings"

	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/library"
)

// AnalyzeContractValidity checks the terms against the four requisitos of
// the Civil Code (consentimiento, objeto, causa, forma). The contract is
// valid only when all four are evidenced.
func (ev *Evaluator) AnalyzeContractValidity(terms []string) *legal.ContractValidity {
	text := fold(strings.Join(terms, " "))

	requirements := make(map[string]bool, 4)
	problems := []string{}
	recommendations := []string{}

	for _, req := range library.ContractRequisitos() {
		met := false
		for _, keyword := range req.Keywords {
			if strings.Contains(text, fold(keyword)) {
				met = true
				break
			}
		}
		requirements[req.Name] = met
		if !met {
			problems = append(problems, req.Problem)
			recommendations = append(recommendations, req.Recommendation)
		}
	}

	return &legal.ContractValidity{
		Valid:           len(problems) == 0,
		Requirements:    requirements,
		Problems:        problems,
		CitedProvisions: library.ContractValidityProvisions(),
		Recommendations: recommendations,
		Disclaimer:      library.Disclaimer,
	}
}
