// Package drafting exposes the document generators as MCP tools. Each
// tool's arguments are the skeleton's fields; values pass through to the
// render engine verbatim.
package drafting

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/tools"
)

func GetTools(service *legal.Service) []tools.Tool {
	return []tools.Tool{
		NewGenerateTool(service, legal.DocAmparo, "generate_amparo",
			"Generate an Amparo (constitutional protection) document", amparoSchema),
		NewGenerateTool(service, legal.DocContract, "generate_contract",
			"Generate a contract document", contractSchema),
		NewGenerateTool(service, legal.DocLawsuit, "generate_lawsuit",
			"Generate a lawsuit (demanda) document", lawsuitSchema),
		NewGenerateTool(service, legal.DocPowerOfAttorney, "generate_power_of_attorney",
			"Generate a power of attorney (poder notarial) document", powerOfAttorneySchema),
		NewGenerateTool(service, legal.DocWill, "generate_will",
			"Generate a will (testamento) document", willSchema),
	}
}

// GenerateTool renders one document type. The differences between the
// five generators are data (schema and document type), not behavior.
type GenerateTool struct {
	service      *legal.Service
	documentType legal.DocumentType
	name         string
	description  string
	schema       string
}

func NewGenerateTool(service *legal.Service, dt legal.DocumentType, name, description, schema string) *GenerateTool {
	return &GenerateTool{
		service:      service,
		documentType: dt,
		name:         name,
		description:  description,
		schema:       schema,
	}
}

func (t *GenerateTool) Name() string {
	return t.name
}

func (t *GenerateTool) Description() string {
	return t.description
}

func (t *GenerateTool) Title() string {
	return t.description
}

func (t *GenerateTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *GenerateTool) Schema() json.RawMessage {
	return json.RawMessage(t.schema)
}

func (t *GenerateTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	// Decode field by field so a wrong-typed value reports the field's
	// name rather than a generic shape error.
	raw := map[string]json.RawMessage{}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &raw); err != nil {
			return nil, legal.InvalidInputError("arguments")
		}
	}

	fields := map[string]legal.FieldValue{}
	var bad []string
	for name, value := range raw {
		var fv legal.FieldValue
		if err := json.Unmarshal(value, &fv); err != nil {
			bad = append(bad, name)
			continue
		}
		fields[name] = fv
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, legal.InvalidInputError(bad...)
	}

	doc, err := t.service.GenerateDocument(ctx, legal.DocumentRequest{
		DocumentType: t.documentType,
		Fields:       fields,
	})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":            doc.ID,
		"document_type": doc.DocumentType,
		"rendered_text": doc.RenderedText,
		"sections":      doc.Sections,
		"generated_at":  doc.GeneratedAt,
	}, nil
}
