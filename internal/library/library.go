// Package library is the static repository of template skeletons, rule
// tables and article citations the engines consult. The library is built
// once at startup and never mutated afterward, so concurrent reads need
// no locking.
package library

import (
	"github.com/lexmex/lexmex-mcp/internal/legal"
)

// FieldKind describes how a skeleton field is supplied and rendered.
type FieldKind string

const (
	FieldText FieldKind = "text"
	FieldDate FieldKind = "date"
	FieldList FieldKind = "list"
)

// FieldDef declares one field a skeleton accepts. Optional text fields may
// carry a default; optional date fields with no default render as the
// document's presentation date.
type FieldDef struct {
	Name     string    `yaml:"name"`
	Kind     FieldKind `yaml:"kind"`
	Required bool      `yaml:"required"`
	Default  string    `yaml:"default"`
}

// SectionDef is one ordered block of a skeleton. Titles and bodies carry
// {{field}} placeholders substituted verbatim at render time. A section
// with When set renders only if that field is non-empty.
type SectionDef struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	When  string `yaml:"when"`
}

// Skeleton is the fixed, ordered section structure for one document type.
// Skeletons define their own heading casing; the render engine imposes
// none.
type Skeleton struct {
	DocumentType legal.DocumentType `yaml:"document_type"`
	Fields       []FieldDef         `yaml:"fields"`
	Sections     []SectionDef       `yaml:"sections"`
}

// RequiredFields returns the names of required fields in declaration
// order.
func (s *Skeleton) RequiredFields() []string {
	var required []string
	for _, f := range s.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}

func (s *Skeleton) Field(name string) (FieldDef, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Rule is one keyword predicate bound to a Finding. All patterns are
// matched case- and accent-insensitively against the normalized fact
// text. AllOf must all be present, at least one of AnyOf must be present
// (when non-empty), and none of NoneOf may be present.
type Rule struct {
	Name    string
	AllOf   []string
	AnyOf   []string
	NoneOf  []string
	Finding legal.Finding
}

// RuleTable holds the ordered rules for one area of law.
type RuleTable struct {
	Area  legal.Area
	Rules []Rule
}

// Library exposes the read-only lookups used by the engines.
type Library struct {
	templates  map[legal.DocumentType]*Skeleton
	ruleTables map[legal.Area]*RuleTable
}

// New builds the library from the built-in skeletons and rule tables.
func New() *Library {
	lib := &Library{
		templates:  make(map[legal.DocumentType]*Skeleton),
		ruleTables: make(map[legal.Area]*RuleTable),
	}

	for _, skeleton := range builtinSkeletons() {
		lib.templates[skeleton.DocumentType] = skeleton
	}
	for _, table := range builtinRuleTables() {
		lib.ruleTables[table.Area] = table
	}

	return lib
}

// Template resolves the skeleton for a document type.
func (l *Library) Template(dt legal.DocumentType) (*Skeleton, error) {
	skeleton, ok := l.templates[dt]
	if !ok {
		return nil, legal.UnknownDocumentTypeError(dt)
	}
	return skeleton, nil
}

// RuleTable resolves the rule table for an area of law.
func (l *Library) RuleTable(area legal.Area) (*RuleTable, error) {
	table, ok := l.ruleTables[area]
	if !ok {
		return nil, legal.UnknownAreaError(area)
	}
	return table, nil
}

// RequiredFields lists the required field names for a document type.
func (l *Library) RequiredFields(dt legal.DocumentType) ([]string, error) {
	skeleton, err := l.Template(dt)
	if err != nil {
		return nil, err
	}
	return skeleton.RequiredFields(), nil
}

// DocumentTypes returns the registered document types. Order is not
// defined.
func (l *Library) DocumentTypes() []legal.DocumentType {
	types := make([]legal.DocumentType, 0, len(l.templates))
	for dt := range l.templates {
		types = append(types, dt)
	}
	return types
}
