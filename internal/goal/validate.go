package goal

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://goal.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ErrInvalidDocument wraps a goal payload that failed schema validation.
type ErrInvalidDocument struct {
	Err error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid goal document: %v", e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

// Parse validates raw JSON against the goal schema and decodes it.
func Parse(raw []byte) (*Document, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile goal schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}
	return &doc, nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(Schema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
