package reason

import (
	"strings"

	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/library"
)

// CheckConstitutionalRights scans a situation for keywords that suggest a
// fundamental-rights violation and reports the protecting articles plus
// whether an amparo appears viable.
func (ev *Evaluator) CheckConstitutionalRights(situation string) *legal.RightsCheck {
	text := fold(situation)

	violated := []string{}
	articles := []string{}
	for _, right := range library.FundamentalRights() {
		for _, keyword := range right.Keywords {
			if strings.Contains(text, fold(keyword)) {
				violated = append(violated, right.Right)
				articles = append(articles, right.Article)
				break
			}
		}
	}

	recommendation := "No se identifican violaciones constitucionales evidentes."
	if len(violated) > 0 {
		recommendation = "Se recomienda la promoción de juicio de amparo para la protección de los derechos fundamentales afectados."
	}

	return &legal.RightsCheck{
		ViolatedRights:         violated,
		ConstitutionalArticles: articles,
		AmparoViable:           len(violated) > 0,
		Recommendation:         recommendation,
		Disclaimer:             library.Disclaimer,
	}
}
