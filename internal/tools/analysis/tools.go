// Package analysis exposes the rule-based assessments as MCP tools.
// Every response carries the professional-advice disclaimer; none of
// these tools replaces counsel.
package analysis

import (
	"context"
	"encoding/json"

	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/tools"
)

func GetTools(service *legal.Service) []tools.Tool {
	return []tools.Tool{
		NewAnalyzeCaseTool(service),
		NewConstitutionalRightsTool(service),
		NewContractValidityTool(service),
		NewCriminalLiabilityTool(service),
	}
}

type AnalyzeCaseTool struct {
	service *legal.Service
}

func NewAnalyzeCaseTool(service *legal.Service) *AnalyzeCaseTool {
	return &AnalyzeCaseTool{service: service}
}

func (t *AnalyzeCaseTool) Name() string {
	return "analyze_legal_case"
}

func (t *AnalyzeCaseTool) Description() string {
	return "Analyze a legal case against Mexican law rule tables"
}

func (t *AnalyzeCaseTool) Title() string {
	return "Analyze Legal Case"
}

func (t *AnalyzeCaseTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *AnalyzeCaseTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"facts": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Facts of the case"
			},
			"legal_question": {
				"type": "string",
				"description": "The legal question to analyze"
			},
			"area": {
				"type": "string",
				"enum": ["constitucional", "civil", "penal", "laboral", "mercantil",
					"administrativo", "fiscal", "familiar"],
				"description": "Area of law (inferred from the facts when omitted)"
			}
		},
		"required": ["facts", "legal_question"]
	}`)
}

func (t *AnalyzeCaseTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		Facts         []string `json:"facts"`
		LegalQuestion string   `json:"legal_question"`
		Area          string   `json:"area"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, legal.InvalidInputError("arguments")
	}

	return t.service.AnalyzeCase(ctx, legal.CaseFacts{
		Facts:         req.Facts,
		LegalQuestion: req.LegalQuestion,
		Area:          legal.Area(req.Area),
	})
}

type ConstitutionalRightsTool struct {
	service *legal.Service
}

func NewConstitutionalRightsTool(service *legal.Service) *ConstitutionalRightsTool {
	return &ConstitutionalRightsTool{service: service}
}

func (t *ConstitutionalRightsTool) Name() string {
	return "check_constitutional_rights"
}

func (t *ConstitutionalRightsTool) Description() string {
	return "Check if a situation violates constitutional rights"
}

func (t *ConstitutionalRightsTool) Title() string {
	return "Check Constitutional Rights"
}

func (t *ConstitutionalRightsTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ConstitutionalRightsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"situation": {
				"type": "string",
				"description": "Description of the situation to analyze"
			}
		},
		"required": ["situation"]
	}`)
}

func (t *ConstitutionalRightsTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		Situation string `json:"situation"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, legal.InvalidInputError("situation")
	}

	return t.service.CheckConstitutionalRights(ctx, req.Situation)
}

type ContractValidityTool struct {
	service *legal.Service
}

func NewContractValidityTool(service *legal.Service) *ContractValidityTool {
	return &ContractValidityTool{service: service}
}

func (t *ContractValidityTool) Name() string {
	return "analyze_contract_validity"
}

func (t *ContractValidityTool) Description() string {
	return "Analyze contract validity under Mexican civil law"
}

func (t *ContractValidityTool) Title() string {
	return "Analyze Contract Validity"
}

func (t *ContractValidityTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ContractValidityTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"contract_terms": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Contract terms to analyze"
			}
		},
		"required": ["contract_terms"]
	}`)
}

func (t *ContractValidityTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		ContractTerms []string `json:"contract_terms"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, legal.InvalidInputError("contract_terms")
	}

	return t.service.AnalyzeContractValidity(ctx, req.ContractTerms)
}

type CriminalLiabilityTool struct {
	service *legal.Service
}

func NewCriminalLiabilityTool(service *legal.Service) *CriminalLiabilityTool {
	return &CriminalLiabilityTool{service: service}
}

func (t *CriminalLiabilityTool) Name() string {
	return "assess_criminal_liability"
}

func (t *CriminalLiabilityTool) Description() string {
	return "Assess criminal liability under Mexican penal law"
}

func (t *CriminalLiabilityTool) Title() string {
	return "Assess Criminal Liability"
}

func (t *CriminalLiabilityTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *CriminalLiabilityTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"facts": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Facts of the case"
			}
		},
		"required": ["facts"]
	}`)
}

func (t *CriminalLiabilityTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		Facts []string `json:"facts"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, legal.InvalidInputError("facts")
	}

	return t.service.AssessCriminalLiability(ctx, req.Facts)
}
