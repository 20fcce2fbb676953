package facts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"archlens/internal/errors"
)

// Load reads a facts file. The format is chosen by extension:
// .json for JSON, .yaml/.yml for YAML.
func Load(path string) (*Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.FactsInvalid, fmt.Sprintf("reading facts file %s", path), err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Parse(data, FormatJSON)
	case ".yaml", ".yml":
		return Parse(data, FormatYAML)
	default:
		return nil, errors.New(errors.UnsupportedFormat, fmt.Sprintf("unsupported facts file extension %q", filepath.Ext(path)), nil)
	}
}

// Format selects the wire encoding of a facts document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Parse decodes a facts document and validates it.
func Parse(data []byte, format Format) (*Facts, error) {
	var f Facts
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.New(errors.FactsInvalid, "decoding JSON facts", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.New(errors.FactsInvalid, "decoding YAML facts", err)
		}
	default:
		return nil, errors.New(errors.UnsupportedFormat, fmt.Sprintf("unsupported facts format %q", format), nil)
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func validate(f *Facts) error {
	seen := make(map[string]struct{}, len(f.Types))
	for i, t := range f.Types {
		if t.QualifiedName == "" {
			return errors.New(errors.FactsInvalid, fmt.Sprintf("type declaration %d has no qualified name", i), nil)
		}
		if _, dup := seen[t.QualifiedName]; dup {
			return errors.New(errors.FactsInvalid, fmt.Sprintf("duplicate type declaration %s", t.QualifiedName), nil)
		}
		seen[t.QualifiedName] = struct{}{}
		switch t.Form {
		case "class", "interface", "record", "enum":
		default:
			return errors.New(errors.FactsInvalid, fmt.Sprintf("type %s has unknown form %q", t.QualifiedName, t.Form), nil)
		}
		for _, fd := range t.Fields {
			if fd.Name == "" {
				return errors.New(errors.FactsInvalid, fmt.Sprintf("type %s declares a field with no name", t.QualifiedName), nil)
			}
		}
		for _, md := range t.Methods {
			if md.Name == "" {
				return errors.New(errors.FactsInvalid, fmt.Sprintf("type %s declares a method with no name", t.QualifiedName), nil)
			}
		}
	}
	return nil
}
