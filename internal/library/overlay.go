package library

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/lexmex/lexmex-mcp/internal/legal"
)

var placeholderRe = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// LoadOverlay reads skeleton files from dir and registers them, adding
// new document types or replacing built-ins. Overlays cannot touch rule
// tables. Loading happens at startup only; the merged library is
// immutable afterward.
func LoadOverlay(lib *Library, dir string) (int, error) {
	fsys := os.DirFS(dir)

	matches, err := doublestar.Glob(fsys, "**/*.{yaml,yml}")
	if err != nil {
		return 0, fmt.Errorf("scan overlay dir: %w", err)
	}
	sort.Strings(matches)

	loaded := 0
	for _, rel := range matches {
		path := filepath.Join(dir, rel)
		skeleton, err := loadSkeletonFile(path)
		if err != nil {
			return loaded, fmt.Errorf("%s: %w", path, err)
		}
		lib.templates[skeleton.DocumentType] = skeleton
		loaded++
	}

	return loaded, nil
}

func loadSkeletonFile(path string) (*Skeleton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var skeleton Skeleton
	if err := yaml.Unmarshal(data, &skeleton); err != nil {
		return nil, fmt.Errorf("decode skeleton: %w", err)
	}

	if err := normalizeSkeleton(&skeleton); err != nil {
		return nil, err
	}

	return &skeleton, nil
}

// normalizeSkeleton fills in defaults and rejects skeletons whose
// sections reference undeclared fields.
func normalizeSkeleton(s *Skeleton) error {
	if s.DocumentType == legal.DocumentType("") {
		return fmt.Errorf("skeleton missing document_type")
	}
	if len(s.Sections) == 0 {
		return fmt.Errorf("skeleton %s has no sections", s.DocumentType)
	}

	declared := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("skeleton %s: field %d has no name", s.DocumentType, i)
		}
		switch f.Kind {
		case FieldText, FieldDate, FieldList:
		case "":
			s.Fields[i].Kind = FieldText
		default:
			return fmt.Errorf("skeleton %s: field %s has unknown kind %q", s.DocumentType, f.Name, f.Kind)
		}
		declared[f.Name] = true
	}

	for _, section := range s.Sections {
		for _, name := range placeholderNames(section.Title + " " + section.Body) {
			if !declared[name] {
				return fmt.Errorf("skeleton %s: section references undeclared field %q", s.DocumentType, name)
			}
		}
		if section.When != "" && !declared[section.When] {
			return fmt.Errorf("skeleton %s: section gated on undeclared field %q", s.DocumentType, section.When)
		}
	}

	return nil
}

func placeholderNames(text string) []string {
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	return names
}
