package contract

import (
	"fmt"
	"slices"
)

// Classification is a sensitivity tag. The empty value means "not sensitive".
type Classification string

const (
	ClassificationNone         Classification = ""
	ClassificationPublic       Classification = "public"
	ClassificationInternal     Classification = "internal"
	ClassificationConfidential Classification = "confidential"
	ClassificationRestricted   Classification = "restricted"
)

// IsValid reports whether c is empty or one of the known tags.
func (c Classification) IsValid() bool {
	switch c {
	case ClassificationNone, ClassificationPublic, ClassificationInternal,
		ClassificationConfidential, ClassificationRestricted:
		return true
	default:
		return false
	}
}

// Field is one typed leaf of a model.
type Field struct {
	Name           string         `json:"name"                     yaml:"-"`
	Type           FieldType      `json:"type"                     yaml:"type"`
	Description    string         `json:"description,omitempty"    yaml:"description,omitempty"`
	Required       bool           `json:"required,omitempty"       yaml:"required,omitempty"`
	Unique         bool           `json:"unique,omitempty"         yaml:"unique,omitempty"`
	Format         string         `json:"format,omitempty"         yaml:"format,omitempty"`
	Pattern        string         `json:"pattern,omitempty"        yaml:"pattern,omitempty"`
	MaxLength      *int           `json:"maxLength,omitempty"      yaml:"maxLength,omitempty"`
	PII            bool           `json:"pii,omitempty"            yaml:"pii,omitempty"`
	Classification Classification `json:"classification,omitempty" yaml:"classification,omitempty"`
}

// Model is a named group of fields, roughly a table.
type Model struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

// Field returns the field with the given name.
func (m Model) Field(name string) (Field, bool) {
	idx := slices.IndexFunc(m.Fields, func(f Field) bool { return f.Name == name })
	if idx < 0 {
		return Field{}, false
	}

	return m.Fields[idx], true
}

// Contract is a named, versioned schema grouping one or more models.
type Contract struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Version     string  `json:"version,omitempty"`
	Owner       string  `json:"owner,omitempty"`
	Description string  `json:"description,omitempty"`
	Models      []Model `json:"models"`
}

// FlatField is a field together with its dotted path.
type FlatField struct {
	Path  string
	Field Field
}

// Flatten enumerates every field as model.field in declaration order.
// When a path repeats, the first occurrence wins.
func (c *Contract) Flatten() []FlatField {
	if c == nil {
		return nil
	}

	var (
		out  []FlatField
		seen = make(map[string]struct{})
	)

	for _, m := range c.Models {
		for _, f := range m.Fields {
			path := JoinPath(m.Name, f.Name)
			if _, dup := seen[path]; dup {
				continue
			}

			seen[path] = struct{}{}
			out = append(out, FlatField{Path: path, Field: f})
		}
	}

	return out
}

// Lookup resolves a dotted path to a field.
func (c *Contract) Lookup(path string) (Field, bool) {
	if c == nil {
		return Field{}, false
	}

	modelName, fieldName, ok := SplitPath(path)
	if !ok {
		return Field{}, false
	}

	for _, m := range c.Models {
		if m.Name == modelName {
			return m.Field(fieldName)
		}
	}

	return Field{}, false
}

// FieldCount returns the number of addressable fields.
func (c *Contract) FieldCount() int {
	return len(c.Flatten())
}

// DisplayName returns the title, falling back to the id.
func (c *Contract) DisplayName() string {
	if c == nil {
		return ""
	}

	if c.Title != "" {
		return c.Title
	}

	return c.ID
}

// String implements fmt.Stringer.
func (c *Contract) String() string {
	if c == nil {
		return "<nil contract>"
	}

	if c.Version == "" {
		return c.ID
	}

	return fmt.Sprintf("%s@%s", c.ID, c.Version)
}
