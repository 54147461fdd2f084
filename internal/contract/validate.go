package contract

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Validate checks the structural shape of a contract. It is meant to run once
// where a contract enters the process (file, database, request body).
func (c *Contract) Validate() error {
	if c == nil {
		return invalid("contract is nil")
	}

	if strings.TrimSpace(c.ID) == "" {
		return invalid("contract id must be set")
	}

	seenModels := make(map[string]struct{}, len(c.Models))

	for _, m := range c.Models {
		if strings.TrimSpace(m.Name) == "" {
			return invalid(fmt.Sprintf("contract %s: model name must be set", c.ID))
		}

		if _, dup := seenModels[m.Name]; dup {
			return invalid(fmt.Sprintf("contract %s: duplicate model %q", c.ID, m.Name))
		}

		seenModels[m.Name] = struct{}{}

		if err := validateModel(c.ID, m); err != nil {
			return err
		}
	}

	return nil
}

func validateModel(contractID string, m Model) error {
	seenFields := make(map[string]struct{}, len(m.Fields))

	for _, f := range m.Fields {
		path := JoinPath(m.Name, f.Name)

		switch {
		case strings.TrimSpace(f.Name) == "":
			return invalid(fmt.Sprintf("contract %s: model %q has a field without a name", contractID, m.Name))
		case strings.Contains(f.Name, "."):
			return invalid(fmt.Sprintf("contract %s: field %q must not contain '.'", contractID, path))
		case !f.Type.IsValid():
			return invalid(fmt.Sprintf("contract %s: field %q has no valid type", contractID, path))
		case !f.Classification.IsValid():
			return invalid(fmt.Sprintf("contract %s: field %q has unknown classification %q",
				contractID, path, f.Classification))
		case f.MaxLength != nil && *f.MaxLength <= 0:
			return invalid(fmt.Sprintf("contract %s: field %q maxLength must be positive", contractID, path))
		}

		if _, dup := seenFields[f.Name]; dup {
			return invalid(fmt.Sprintf("contract %s: duplicate field %q", contractID, path))
		}

		seenFields[f.Name] = struct{}{}
	}

	return nil
}

func invalid(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}
