package contract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"
)

type contractDoc struct {
	ID     string    `yaml:"id"`
	Info   infoDoc   `yaml:"info"`
	Models yaml.Node `yaml:"models"`
}

type infoDoc struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version,omitempty"`
	Owner       string `yaml:"owner,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type modelDoc struct {
	Description string    `yaml:"description,omitempty"`
	Fields      yaml.Node `yaml:"fields"`
}

// LoadFile reads and parses a YAML contract from path.
func LoadFile(path string) (*Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("contract file not found: " + path).
			WithCause(err)
	}

	return Parse(data)
}

// Parse decodes a YAML contract and validates its shape.
func Parse(data []byte) (*Contract, error) {
	var doc contractDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse contract yaml").
			WithCause(err)
	}

	models, err := decodeModels(&doc.Models)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("contract %s: %v", doc.ID, err)).
			WithCause(err)
	}

	c := &Contract{
		ID:          doc.ID,
		Title:       doc.Info.Title,
		Version:     doc.Info.Version,
		Owner:       doc.Info.Owner,
		Description: doc.Info.Description,
		Models:      models,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// ParseJSON decodes the array-shaped JSON form and validates it.
func ParseJSON(data []byte) (*Contract, error) {
	var c Contract
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse contract json").
			WithCause(err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// decodeModels walks the models mapping node so declaration order survives.
func decodeModels(node *yaml.Node) ([]Model, error) {
	if node.Kind == 0 {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("models: expected mapping, got %v", node.Kind)
	}

	models := make([]Model, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value

		var md modelDoc
		if err := node.Content[i+1].Decode(&md); err != nil {
			return nil, fmt.Errorf("model %q: %w", name, err)
		}

		fields, err := decodeFields(&md.Fields)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", name, err)
		}

		models = append(models, Model{
			Name:        name,
			Description: md.Description,
			Fields:      fields,
		})
	}

	return models, nil
}

func decodeFields(node *yaml.Node) ([]Field, error) {
	if node.Kind == 0 {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fields: expected mapping, got %v", node.Kind)
	}

	fields := make([]Field, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value

		var f Field
		if err := node.Content[i+1].Decode(&f); err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		f.Name = name
		fields = append(fields, f)
	}

	return fields, nil
}

// Marshal encodes a contract back into its YAML document form.
func Marshal(c *Contract) ([]byte, error) {
	models := &yaml.Node{Kind: yaml.MappingNode}

	for _, m := range c.Models {
		fields := &yaml.Node{Kind: yaml.MappingNode}

		for _, f := range m.Fields {
			value := &yaml.Node{}
			if err := value.Encode(f); err != nil {
				return nil, fmt.Errorf("encode field %s: %w", JoinPath(m.Name, f.Name), err)
			}

			fields.Content = append(fields.Content, scalar(f.Name), value)
		}

		body := &yaml.Node{Kind: yaml.MappingNode}
		if m.Description != "" {
			body.Content = append(body.Content, scalar("description"), scalar(m.Description))
		}

		body.Content = append(body.Content, scalar("fields"), fields)
		models.Content = append(models.Content, scalar(m.Name), body)
	}

	doc := contractDoc{
		ID: c.ID,
		Info: infoDoc{
			Title:       c.Title,
			Version:     c.Version,
			Owner:       c.Owner,
			Description: c.Description,
		},
		Models: *models,
	}

	return yaml.Marshal(doc)
}

// WriteFile writes the YAML form of c to path.
func WriteFile(c *Contract, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal contract: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write contract file %s: %w", path, err)
	}

	return nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
