// Package docgen renders legal documents from a template skeleton plus
// caller-supplied facts. Caller values are substituted verbatim: the
// engine never normalizes, escapes or reformats what it is given.
package docgen

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/library"
)

var placeholderRe = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// Engine composes documents from the library's skeletons. It holds no
// per-call state.
type Engine struct {
	lib *library.Library
	now func() time.Time
}

// Option is a functional option for Engine.
type Option func(*Engine)

// WithClock fixes the timestamp source. A fixed clock makes rendering
// byte-identical across calls.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(lib *library.Library, opts ...Option) *Engine {
	e := &Engine{
		lib: lib,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render produces the document for req. Every required field must be
// present and non-empty; all missing fields are reported in one error so
// the caller can fix them in a single pass.
func (e *Engine) Render(req legal.DocumentRequest) (*legal.GeneratedDocument, error) {
	skeleton, err := e.lib.Template(req.DocumentType)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range skeleton.RequiredFields() {
		value, ok := req.Fields[name]
		if !ok || value.Empty() {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, legal.MissingRequiredFieldError(missing)
	}

	generatedAt := e.now()
	values := e.resolveValues(skeleton, req.Fields, generatedAt)

	var sections []legal.Section
	for _, def := range skeleton.Sections {
		if def.When != "" {
			gate, ok := req.Fields[def.When]
			if !ok || gate.Empty() {
				continue
			}
		}
		sections = append(sections, legal.Section{
			Title: substitute(def.Title, values),
			Body:  substitute(def.Body, values),
		})
	}

	var parts []string
	for _, section := range sections {
		if section.Title != "" {
			parts = append(parts, section.Title+"\n\n"+section.Body)
		} else {
			parts = append(parts, section.Body)
		}
	}

	return &legal.GeneratedDocument{
		ID:           uuid.NewString(),
		DocumentType: req.DocumentType,
		Sections:     sections,
		RenderedText: strings.Join(parts, "\n\n"),
		GeneratedAt:  generatedAt,
	}, nil
}

// resolveValues maps every declared field to its rendered text. Supplied
// values pass through verbatim; list values become an enumeration
// preserving input order. Absent optional fields fall back to the
// skeleton default, and absent optional date fields to the render date.
func (e *Engine) resolveValues(skeleton *library.Skeleton, fields map[string]legal.FieldValue, generatedAt time.Time) map[string]string {
	values := make(map[string]string, len(skeleton.Fields))

	for _, def := range skeleton.Fields {
		value, ok := fields[def.Name]
		switch {
		case ok && value.IsList():
			values[def.Name] = enumerate(value.List)
		case ok && value.Text != "":
			values[def.Name] = value.Text
		case def.Default != "":
			values[def.Name] = def.Default
		case def.Kind == library.FieldDate:
			values[def.Name] = SpanishDate(generatedAt)
		default:
			values[def.Name] = ""
		}
	}

	return values
}

func substitute(text string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}

// enumerate renders list values as "N.- item" lines, preserving input
// order.
func enumerate(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d.- %s", i+1, item)
	}
	return b.String()
}
