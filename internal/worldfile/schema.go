package worldfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed world.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("world.schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile("world.schema.json")
	})
	return schema, schemaErr
}

// Validate checks the shape of a world document: required fields, positive
// ids and no unknown keys. Direction names and exit kinds are checked when the
// catalog is built.
func Validate(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse world YAML: %w", err)
	}

	// The validator expects encoding/json values, so round-trip through JSON.
	encoded, err := json.Marshal(stringKeys(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorld, err)
	}
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorld, err)
	}

	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("world schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorld, err)
	}
	return nil
}

// stringKeys rewrites mappings with non-string keys, such as a zone named 7,
// into string-keyed maps so they can be encoded as JSON objects.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}
