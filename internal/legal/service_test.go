package legal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lexmex/lexmex-mcp/internal/docgen"
	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/library"
	"github.com/lexmex/lexmex-mcp/internal/reason"
)

func newService() *legal.Service {
	lib := library.New()
	return legal.NewService(
		legal.WithRenderer(docgen.NewEngine(lib)),
		legal.WithEvaluator(reason.NewEvaluator(lib)),
	)
}

func TestGenerateDocumentValidation(t *testing.T) {
	svc := newService()

	_, err := svc.GenerateDocument(context.Background(), legal.DocumentRequest{})

	var legalErr *legal.Error
	if !errors.As(err, &legalErr) {
		t.Fatalf("expected *legal.Error, got %v", err)
	}
	if legalErr.Kind != legal.KindInvalidInput {
		t.Fatalf("expected kind %s, got %s", legal.KindInvalidInput, legalErr.Kind)
	}
	if len(legalErr.Fields) != 1 || legalErr.Fields[0] != "document_type" {
		t.Errorf("expected offending field document_type, got %v", legalErr.Fields)
	}
}

func TestGenerateDocumentNilFields(t *testing.T) {
	svc := newService()

	// A nil field map is treated as empty, so the renderer reports the
	// missing required fields rather than the service rejecting the shape.
	_, err := svc.GenerateDocument(context.Background(), legal.DocumentRequest{
		DocumentType: legal.DocWill,
	})

	var legalErr *legal.Error
	if !errors.As(err, &legalErr) {
		t.Fatalf("expected *legal.Error, got %v", err)
	}
	if legalErr.Kind != legal.KindMissingRequiredField {
		t.Errorf("expected kind %s, got %s", legal.KindMissingRequiredField, legalErr.Kind)
	}
}

func TestAnalyzeCaseValidation(t *testing.T) {
	svc := newService()

	_, err := svc.AnalyzeCase(context.Background(), legal.CaseFacts{})

	var legalErr *legal.Error
	if !errors.As(err, &legalErr) {
		t.Fatalf("expected *legal.Error, got %v", err)
	}
	if legalErr.Kind != legal.KindInvalidInput {
		t.Fatalf("expected kind %s, got %s", legal.KindInvalidInput, legalErr.Kind)
	}
	if len(legalErr.Fields) != 1 || legalErr.Fields[0] != "legal_question" {
		t.Errorf("expected offending field legal_question, got %v", legalErr.Fields)
	}
}

func TestAnalyzeCaseEmptyFactSet(t *testing.T) {
	svc := newService()

	// An empty fact sequence is a distinct failure from a malformed
	// request shape: the evaluator reports it after normalization, so
	// nil, empty and whitespace-only fact lists all take the same path.
	for _, facts := range [][]string{nil, {}, {"   ", "\t"}} {
		_, err := svc.AnalyzeCase(context.Background(), legal.CaseFacts{
			Facts:         facts,
			LegalQuestion: "¿Qué procede?",
			Area:          legal.AreaCivil,
		})

		var legalErr *legal.Error
		if !errors.As(err, &legalErr) {
			t.Fatalf("facts %q: expected *legal.Error, got %v", facts, err)
		}
		if legalErr.Kind != legal.KindEmptyFactSet {
			t.Errorf("facts %q: expected kind %s, got %s", facts, legal.KindEmptyFactSet, legalErr.Kind)
		}
	}
}

func TestAnalyzeCaseInfersArea(t *testing.T) {
	svc := newService()

	result, err := svc.AnalyzeCase(context.Background(), legal.CaseFacts{
		Facts:         []string{"Fui despedido de mi trabajo sin explicación"},
		LegalQuestion: "¿Qué puedo reclamar?",
	})
	if err != nil {
		t.Fatalf("AnalyzeCase failed: %v", err)
	}
	if result.Area != legal.AreaLaboral {
		t.Errorf("expected inferred area laboral, got %s", result.Area)
	}
}

func TestAnalyzeCaseRejectsUnknownArea(t *testing.T) {
	svc := newService()

	_, err := svc.AnalyzeCase(context.Background(), legal.CaseFacts{
		Facts:         []string{"algo"},
		LegalQuestion: "¿procede?",
		Area:          "internacional",
	})

	var legalErr *legal.Error
	if !errors.As(err, &legalErr) {
		t.Fatalf("expected *legal.Error, got %v", err)
	}
	if legalErr.Kind != legal.KindUnknownArea {
		t.Errorf("expected kind %s, got %s", legal.KindUnknownArea, legalErr.Kind)
	}
}

func TestServiceHonorsCancelledContext(t *testing.T) {
	svc := newService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.GenerateDocument(ctx, legal.DocumentRequest{DocumentType: legal.DocWill}); !errors.Is(err, context.Canceled) {
		t.Errorf("GenerateDocument: expected context.Canceled, got %v", err)
	}
	if _, err := svc.AnalyzeCase(ctx, legal.CaseFacts{Facts: []string{"x"}, LegalQuestion: "y"}); !errors.Is(err, context.Canceled) {
		t.Errorf("AnalyzeCase: expected context.Canceled, got %v", err)
	}
	if _, err := svc.CheckConstitutionalRights(ctx, "situación"); !errors.Is(err, context.Canceled) {
		t.Errorf("CheckConstitutionalRights: expected context.Canceled, got %v", err)
	}
}

func TestSpecialisedAssessmentsValidateInput(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	if _, err := svc.CheckConstitutionalRights(ctx, "   "); err == nil {
		t.Error("blank situation must be rejected")
	}
	if _, err := svc.AnalyzeContractValidity(ctx, nil); err == nil {
		t.Error("empty contract terms must be rejected")
	}
	if _, err := svc.AssessCriminalLiability(ctx, nil); err == nil {
		t.Error("empty fact list must be rejected")
	}
}
