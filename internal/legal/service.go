package legal

import (
	"context"
	"strings"
)

// DocumentRenderer turns a validated request into a generated document.
type DocumentRenderer interface {
	Render(req DocumentRequest) (*GeneratedDocument, error)
}

// CaseEvaluator runs the rule tables and the specialised assessments.
type CaseEvaluator interface {
	Evaluate(facts CaseFacts) (*AssessmentResult, error)
	CheckConstitutionalRights(situation string) *RightsCheck
	AnalyzeContractValidity(terms []string) *ContractValidity
	AssessCriminalLiability(facts []string) *CriminalAssessment
	InferArea(facts []string, question string) Area
}

// Service is the single entry surface of the core. It validates the shape
// of incoming requests and dispatches to the renderer or evaluator. It
// holds no mutable state, so concurrent calls need no coordination.
type Service struct {
	renderer  DocumentRenderer
	evaluator CaseEvaluator
}

// ServiceOption is a functional option for Service.
type ServiceOption func(*Service)

func WithRenderer(r DocumentRenderer) ServiceOption {
	return func(s *Service) {
		s.renderer = r
	}
}

func WithEvaluator(e CaseEvaluator) ServiceOption {
	return func(s *Service) {
		s.evaluator = e
	}
}

func NewService(opts ...ServiceOption) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateDocument validates the request shape and renders the document.
// The context is only consulted before delegation; rendering itself is
// bounded and sub-millisecond.
func (s *Service) GenerateDocument(ctx context.Context, req DocumentRequest) (*GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var bad []string
	if strings.TrimSpace(string(req.DocumentType)) == "" {
		bad = append(bad, "document_type")
	}
	if req.Fields == nil {
		req.Fields = map[string]FieldValue{}
	}
	if len(bad) > 0 {
		return nil, InvalidInputError(bad...)
	}

	return s.renderer.Render(req)
}

// AnalyzeCase validates the case shape and runs the rule tables. An empty
// area is inferred from the facts before the enum check, matching the tool
// surface where area is optional.
func (s *Service) AnalyzeCase(ctx context.Context, facts CaseFacts) (*AssessmentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(facts.LegalQuestion) == "" {
		return nil, InvalidInputError("legal_question")
	}

	if facts.Area == "" {
		facts.Area = s.evaluator.InferArea(facts.Facts, facts.LegalQuestion)
	}
	if !facts.Area.Valid() {
		return nil, UnknownAreaError(facts.Area)
	}

	return s.evaluator.Evaluate(facts)
}

func (s *Service) CheckConstitutionalRights(ctx context.Context, situation string) (*RightsCheck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(situation) == "" {
		return nil, InvalidInputError("situation")
	}

	return s.evaluator.CheckConstitutionalRights(situation), nil
}

func (s *Service) AnalyzeContractValidity(ctx context.Context, terms []string) (*ContractValidity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(terms) == 0 {
		return nil, InvalidInputError("contract_terms")
	}

	return s.evaluator.AnalyzeContractValidity(terms), nil
}

func (s *Service) AssessCriminalLiability(ctx context.Context, facts []string) (*CriminalAssessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(facts) == 0 {
		return nil, InvalidInputError("facts")
	}

	return s.evaluator.AssessCriminalLiability(facts), nil
}
