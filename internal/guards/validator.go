package guards

import (
	"fmt"
	"strings"

	"github.com/dastudio/da-assistant/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator holds one compiled JSON schema per intent handler and checks
// handler parameters against them before execution.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles the given raw schemas, keyed by intent label.
func NewValidator(raw map[string]string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()

	for label, schema := range raw {
		url := "assistant://" + label + ".schema.json"
		if err := compiler.AddResource(url, strings.NewReader(schema)); err != nil {
			return nil, fmt.Errorf("adding schema for %s: %w", label, err)
		}
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema, len(raw))}

	for label := range raw {
		url := "assistant://" + label + ".schema.json"
		compiled, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compiling schema for %s: %w", label, err)
		}
		v.schemas[label] = compiled
	}

	return v, nil
}

// Validate checks params against the schema registered for the label.
// Labels without a schema pass. A failure wraps domain.ErrValidation so the
// dispatch layer can map it to a structured error code.
func (v *Validator) Validate(label string, params map[string]any) error {
	schema, ok := v.schemas[label]
	if !ok {
		return nil
	}

	// schemas validate generic JSON values, so a nil map must become an
	// empty object rather than a JSON null
	value := params
	if value == nil {
		value = map[string]any{}
	}

	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return nil
}
