// Package schema describes the persisted record layout as an OpenAPI 3
// component so stored payloads can be checked on load and the layout can be
// published for other consumers.
package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-stepform/pkg/record"
	"github.com/goliatone/go-stepform/pkg/validation"
)

// ComponentName is the key the record schema is published under.
const ComponentName = "FormRecord"

// Format selects the encoding used by Encode.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrInvalidPayload wraps schema violations found in a persisted payload.
var ErrInvalidPayload = errors.New("schema: invalid payload")

// Record returns the JSON schema of a persisted record: six required string
// properties and nothing else.
func Record() *openapi3.Schema {
	s := openapi3.NewObjectSchema().WithoutAdditionalProperties()
	s.Title = ComponentName
	s.Description = "Registration data collected by the multi-step form."

	for _, field := range record.Fields() {
		prop := openapi3.NewStringSchema()
		prop.Description = field.Label()
		switch field {
		case record.FieldEmail:
			prop = prop.WithPattern(validation.EmailPattern.String())
		case record.FieldUsername:
			prop = prop.WithMinLength(validation.MinUsernameLength)
		case record.FieldPassword:
			prop = prop.WithMinLength(validation.MinPasswordLength)
		default:
			prop = prop.WithMinLength(1)
		}
		if field.Secret() {
			prop = prop.WithFormat("password")
		}
		s = s.WithProperty(string(field), prop)
		s.Required = append(s.Required, string(field))
	}
	return s
}

// Document wraps the record schema in a minimal OpenAPI document.
func Document() *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "stepform",
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				ComponentName: openapi3.NewSchemaRef("", Record()),
			},
		},
	}
}

// ValidateDocument runs the kin-openapi document checks.
func ValidateDocument(ctx context.Context) error {
	if err := Document().Validate(ctx); err != nil {
		return fmt.Errorf("schema: document: %w", err)
	}
	return nil
}

// ValidatePayload checks a serialized record against the schema. All
// violations are reported together.
func ValidatePayload(payload []byte) error {
	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrInvalidPayload, err)
	}
	if err := Record().VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

// DecodeRecord validates payload and decodes it into a Record.
func DecodeRecord(payload []byte) (record.Record, error) {
	if err := ValidatePayload(payload); err != nil {
		return record.Record{}, err
	}
	var rec record.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return record.Record{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return rec, nil
}

// Encode renders the OpenAPI document in the requested format.
func Encode(format Format) ([]byte, error) {
	payload, err := json.MarshalIndent(Document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal document: %w", err)
	}

	switch Format(strings.ToLower(string(format))) {
	case "", FormatJSON:
		return payload, nil
	case FormatYAML:
		// JSON is valid YAML; decoding into a node keeps key order.
		var node yaml.Node
		if err := yaml.Unmarshal(payload, &node); err != nil {
			return nil, fmt.Errorf("schema: convert to yaml: %w", err)
		}
		blockStyle(&node)
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return nil, fmt.Errorf("schema: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("schema: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("schema: unsupported format %q", format)
	}
}

// blockStyle drops the flow and quoting styles inherited from the JSON source.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
