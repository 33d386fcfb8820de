package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexmex/lexmex-mcp/internal/legal"
)

func writeOverlay(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write overlay file: %v", err)
	}
}

func TestLoadOverlayAddsDocumentType(t *testing.T) {
	dir := t.TempDir()
	writeOverlay(t, dir, "pagare.yaml", `
document_type: pagare
fields:
  - name: suscriptor
    kind: text
    required: true
  - name: monto
    required: true
  - name: fecha_vencimiento
    kind: date
sections:
  - title: PAGARÉ
    body: "Debo y pagaré incondicionalmente a {{suscriptor}} la cantidad de {{monto}}."
  - body: "Vence el {{fecha_vencimiento}}."
`)

	lib := New()
	loaded, err := LoadOverlay(lib, dir)
	if err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}
	if loaded != 1 {
		t.Fatalf("expected 1 loaded skeleton, got %d", loaded)
	}

	skeleton, err := lib.Template(legal.DocumentType("pagare"))
	if err != nil {
		t.Fatalf("overlay type not registered: %v", err)
	}
	// Kind defaults to text when omitted.
	monto, ok := skeleton.Field("monto")
	if !ok || monto.Kind != FieldText {
		t.Errorf("monto kind: expected %s, got %s", FieldText, monto.Kind)
	}
	required := skeleton.RequiredFields()
	if len(required) != 2 || required[0] != "suscriptor" || required[1] != "monto" {
		t.Errorf("unexpected required fields: %v", required)
	}
}

func TestLoadOverlayReplacesBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeOverlay(t, dir, "will.yml", `
document_type: will
fields:
  - name: testador
    required: true
sections:
  - title: TESTAMENTO SIMPLIFICADO
    body: "Yo, {{testador}}, declaro mi última voluntad."
`)

	lib := New()
	if _, err := LoadOverlay(lib, dir); err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}

	skeleton, err := lib.Template(legal.DocWill)
	if err != nil {
		t.Fatalf("Template failed: %v", err)
	}
	if len(skeleton.Sections) != 1 || skeleton.Sections[0].Title != "TESTAMENTO SIMPLIFICADO" {
		t.Errorf("builtin skeleton was not replaced: %+v", skeleton.Sections)
	}
}

func TestLoadOverlayRejectsUndeclaredPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writeOverlay(t, dir, "bad.yaml", `
document_type: recibo
fields:
  - name: emisor
sections:
  - body: "Recibí de {{emisor}} la cantidad de {{monto}}."
`)

	_, err := LoadOverlay(New(), dir)
	if err == nil {
		t.Fatal("expected error for undeclared placeholder")
	}
	if !strings.Contains(err.Error(), "monto") {
		t.Errorf("error does not name the undeclared field: %v", err)
	}
}

func TestLoadOverlayRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeOverlay(t, dir, "broken.yaml", "document_type: [unclosed")

	if _, err := LoadOverlay(New(), dir); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadOverlayRejectsUnknownFieldKind(t *testing.T) {
	dir := t.TempDir()
	writeOverlay(t, dir, "kind.yaml", `
document_type: recibo
fields:
  - name: monto
    kind: number
sections:
  - body: "{{monto}}"
`)

	if _, err := LoadOverlay(New(), dir); err == nil {
		t.Fatal("expected error for unknown field kind")
	}
}

func TestLoadOverlayEmptyDir(t *testing.T) {
	lib := New()
	loaded, err := LoadOverlay(lib, t.TempDir())
	if err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}
	if loaded != 0 {
		t.Errorf("expected 0 loaded skeletons, got %d", loaded)
	}
	if len(lib.DocumentTypes()) != 5 {
		t.Errorf("built-in types changed: %v", lib.DocumentTypes())
	}
}

func TestLoadOverlayNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "custom", "mercantil")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeOverlay(t, sub, "factura.yaml", `
document_type: factura
fields:
  - name: emisor
    required: true
sections:
  - body: "Factura emitida por {{emisor}}."
`)

	lib := New()
	loaded, err := LoadOverlay(lib, dir)
	if err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}
	if loaded != 1 {
		t.Errorf("nested overlay file not found, loaded %d", loaded)
	}
}
