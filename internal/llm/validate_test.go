package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func pickSchema() *Schema {
	return &Schema{
		Name: "llm-test-pick",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"courseId":  map[string]any{"type": "string"},
				"rationale": map[string]any{"type": "string"},
				"fit":       map[string]any{"type": "string", "enum": []any{"strong", "possible"}},
			},
			"required":             []any{"courseId", "rationale"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"courseId":"medicine-uct","rationale":"strong science marks","fit":"strong"}`, false},
		{"optional field omitted", `{"courseId":"law-wits","rationale":"debating"}`, false},
		{"missing required", `{"courseId":"law-wits"}`, true},
		{"wrong type", `{"courseId":7,"rationale":"x"}`, true},
		{"enum violated", `{"courseId":"a","rationale":"b","fit":"maybe"}`, true},
		{"unknown field", `{"courseId":"a","rationale":"b","extra":1}`, true},
		{"not json", `courseId: a`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(pickSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
			if string(inv.Content) != tt.raw {
				t.Fatalf("content not preserved: %s", inv.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Fatalf("nil schema should accept any content, got %v", err)
	}
}
