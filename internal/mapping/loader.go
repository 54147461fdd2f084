package mapping

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("mapping file not found: " + path).
			WithCause(err)
	}

	return Parse(data)
}

// Parse parses YAML data into a normalized, checked Set.
func Parse(data []byte) (*Set, error) {
	var s Set

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse mapping yaml").
			WithCause(err)
	}

	s.Normalize()

	if err := s.Check(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Marshal serializes a Set to YAML.
func Marshal(s *Set) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Set to the given path.
func WriteFile(s *Set, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
