package guards

import (
	"errors"
	"testing"

	"github.com/dastudio/da-assistant/internal/domain"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()

	v, err := NewValidator(map[string]string{
		"test.intent": `{
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string", "minLength": 1}
			}
		}`,
	})
	if err != nil {
		t.Fatalf("building validator: %v", err)
	}

	return v
}

func TestValidator_Validate(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		label   string
		params  map[string]any
		wantErr bool
	}{
		{
			name:   "valid params",
			label:  "test.intent",
			params: map[string]any{"name": "Summer Sale"},
		},
		{
			name:    "missing required field",
			label:   "test.intent",
			params:  map[string]any{},
			wantErr: true,
		},
		{
			name:    "nil params",
			label:   "test.intent",
			wantErr: true,
		},
		{
			name:    "wrong type",
			label:   "test.intent",
			params:  map[string]any{"name": 42.0},
			wantErr: true,
		},
		{
			name:   "unknown label passes",
			label:  "no.schema",
			params: map[string]any{"anything": "goes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.label, tt.params)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("Validate() error = %v, want wrapped ErrValidation", err)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestValidator_RejectsBadSchema(t *testing.T) {
	_, err := NewValidator(map[string]string{"broken": `{"type": 42}`})
	if err == nil {
		t.Error("expected an error for an invalid schema")
	}
}
