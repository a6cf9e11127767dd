// Package docschema validates JSON documents against JSON Schema
// definitions, compiling each named schema once.
package docschema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// cache holds compiled schemas by name.
var cache sync.Map // map[string]*jsonschema.Schema

// Compile returns the compiled schema registered under name, compiling
// def on first use. Definitions are keyed by name only, so a name must
// always be paired with the same definition.
func Compile(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := cache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants plain decoded JSON values, not Go maps with
	// typed slices, so round-trip the definition.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(defBytes, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	actual, _ := cache.LoadOrStore(name, compiled)
	return actual.(*jsonschema.Schema), nil
}

// Validate parses raw and checks it against the named schema.
func Validate(name string, def map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := Compile(name, def)
	if err != nil {
		return fmt.Errorf("schema %q: %w", name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
