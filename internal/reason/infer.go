package reason

import (
	"strings"

	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/library"
)

// InferArea guesses the area of law from fact keywords when the caller
// omits it. Areas are tried in the knowledge base's fixed order; civil is
// the fallback.
func (ev *Evaluator) InferArea(facts []string, question string) legal.Area {
	text := fold(strings.Join(facts, " ") + " " + question)

	for _, set := range library.AreaKeywords() {
		for _, keyword := range set.Keywords {
			if strings.Contains(text, fold(keyword)) {
				return set.Area
			}
		}
	}

	return legal.AreaCivil
}
