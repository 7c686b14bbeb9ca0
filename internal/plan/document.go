package plan

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the rendered form of a plan handed to a provisioning sink.
// Outputs carry the operator-facing values (registry URI, endpoints,
// function identifiers) keyed by name.
type Document struct {
	Project     string            `yaml:"project"`
	Environment string            `yaml:"environment"`
	Resources   []Descriptor      `yaml:"resources"`
	Outputs     map[string]string `yaml:"outputs,omitempty"`
}

// Document renders the plan with the given operator-facing outputs.
func (p *Plan) Document(outputs map[string]string) *Document {
	return &Document{
		Project:     p.project,
		Environment: p.environment,
		Resources:   p.Descriptors(),
		Outputs:     outputs,
	}
}

// Marshal renders the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan document: %w", err)
	}
	return data, nil
}

// UnmarshalDocument parses a stored plan document. Resource params come back
// as generic maps; callers that only need resource identities or outputs do
// not care.
func UnmarshalDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plan document: %w", err)
	}
	return &doc, nil
}

// Key returns the canonical object key for the document in a plan store.
func (d *Document) Key() string {
	return fmt.Sprintf("%s/%s/plan.yaml", d.Project, d.Environment)
}
