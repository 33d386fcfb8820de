package tools

// ReadOnlyAnnotations fits the generators and analyzers: pure, in-memory
// and deterministic.
func ReadOnlyAnnotations() map[string]bool {
	return map[string]bool{
		"readOnlyHint":    true,
		"destructiveHint": false,
		"idempotentHint":  true,
		"openWorldHint":   false,
	}
}

// GazetteAnnotations fits the DOF fetchers: read-only but talking to an
// external site whose answers change over time.
func GazetteAnnotations() map[string]bool {
	return map[string]bool{
		"readOnlyHint":    true,
		"destructiveHint": false,
		"idempotentHint":  false,
		"openWorldHint":   true,
	}
}
