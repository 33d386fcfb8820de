package reason

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lower-cases s and strips combining accent marks, so "Despedído"
// and "DESPEDIDO" compare equal. Transformers are stateful, so a fresh
// chain is built per call.
func fold(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// normalizeFacts trims whitespace and drops empty entries, preserving
// order.
func normalizeFacts(facts []string) []string {
	var normalized []string
	for _, fact := range facts {
		trimmed := strings.TrimSpace(fact)
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}
