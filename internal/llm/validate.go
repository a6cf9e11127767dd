package llm

import (
	"encoding/json"

	"github.com/abhisek/coursefit/internal/docschema"
)

// validateResponse checks raw against schema. A nil schema accepts
// anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	if err := docschema.Validate(schema.Name, schema.Definition, raw); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}
