// Package reason applies the library's rule tables to case facts. The
// matching is keyword presence over a fixed knowledge base, not statutory
// reasoning, and every result carries the professional-advice disclaimer.
package reason

import (
	"strings"

	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/library"
)

// Evaluator runs rule tables and the specialised assessments. It holds no
// per-call state.
type Evaluator struct {
	lib *library.Library
}

func NewEvaluator(lib *library.Library) *Evaluator {
	return &Evaluator{lib: lib}
}

// Evaluate runs every rule of the area's table in declaration order and
// collects all matching findings. Legal situations routinely implicate
// several provisions at once, so there is no early exit and no single
// best match. Zero matches yields the generic low-risk finding, never an
// error.
func (ev *Evaluator) Evaluate(facts legal.CaseFacts) (*legal.AssessmentResult, error) {
	table, err := ev.lib.RuleTable(facts.Area)
	if err != nil {
		return nil, err
	}

	normalized := normalizeFacts(facts.Facts)
	if len(normalized) == 0 {
		return nil, legal.EmptyFactSetError()
	}

	text := fold(strings.Join(normalized, " ") + " " + facts.LegalQuestion)

	var findings []legal.Finding
	for _, rule := range table.Rules {
		if ruleMatches(rule, text) {
			findings = append(findings, rule.Finding)
		}
	}

	if len(findings) == 0 {
		findings = []legal.Finding{library.NoMatchFinding(facts.Area)}
	}

	return &legal.AssessmentResult{
		Area:       facts.Area,
		Findings:   findings,
		Disclaimer: library.Disclaimer,
	}, nil
}

func ruleMatches(rule library.Rule, text string) bool {
	for _, pattern := range rule.AllOf {
		if !strings.Contains(text, fold(pattern)) {
			return false
		}
	}

	if len(rule.AnyOf) > 0 {
		matched := false
		for _, pattern := range rule.AnyOf {
			if strings.Contains(text, fold(pattern)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, pattern := range rule.NoneOf {
		if strings.Contains(text, fold(pattern)) {
			return false
		}
	}

	return true
}
